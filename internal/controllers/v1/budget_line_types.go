package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rkas-pintar/backend/internal/httputil"
	"github.com/rkas-pintar/backend/internal/models"
	"github.com/rkas-pintar/backend/internal/types"
	"github.com/shopspring/decimal"
)

// BudgetLineEditable represents all user configurable parameters
type BudgetLineEditable struct {
	Type          models.LineType      `json:"type" example:"EXPENSE"`                                         // Whether the line is income or expense
	FundingSource models.FundingSource `json:"fundingSource" example:"BOSP_PUSAT" default:""`                  // Fund program the money originates from
	Standard      models.Standard      `json:"standard" example:"SARPRAS" default:""`                          // National education standard, expense lines only
	Component     models.Component     `json:"component" example:"PENGEMBANGAN_PERPUSTAKAAN" default:""`       // BOSP usage component, expense lines only
	AccountCode   string               `json:"accountCode" example:"5.1.02.01.01.0024" default:""`             // Government chart of accounts code
	Description   string               `json:"description" example:"Pembelian buku perpustakaan" default:""`   // Description of the line
	Quantity      decimal.Decimal      `json:"quantity" example:"20" default:"0"`                              // Planned quantity
	Unit          string               `json:"unit" example:"rim" default:""`                                  // Unit for the quantity
	UnitPrice     decimal.Decimal      `json:"unitPrice" example:"55000" default:"0"`                          // Price per unit
	Amount        decimal.Decimal      `json:"amount" example:"1100000" default:"0"`                           // Annual amount (pagu), derived from quantity and unit price when zero
	PlannedMonths types.MonthList      `json:"plannedMonths" example:"1,7"`                                    // Months the amount is planned to be spent in, defaults to January
	Date          *time.Time           `json:"date" example:"2024-01-15T00:00:00Z"`                            // Receipt date, income lines only
	FiscalYear    int                  `json:"fiscalYear" example:"2024"`                                      // Fiscal year the line belongs to
	Note          string               `json:"note" example:"Realisasi menunggu pencairan tahap 2" default:""` // Notes about the line
}

func (editable BudgetLineEditable) model() models.BudgetLine {
	return models.BudgetLine{
		Type:          editable.Type,
		FundingSource: editable.FundingSource,
		Standard:      editable.Standard,
		Component:     editable.Component,
		AccountCode:   editable.AccountCode,
		Description:   editable.Description,
		Quantity:      editable.Quantity,
		Unit:          editable.Unit,
		UnitPrice:     editable.UnitPrice,
		Amount:        editable.Amount,
		PlannedMonths: editable.PlannedMonths,
		Date:          editable.Date,
		FiscalYear:    editable.FiscalYear,
		Note:          editable.Note,
	}
}

type BudgetLineLinks struct {
	Self         string `json:"self" example:"https://example.com/v1/budget-lines/3b1ea324-d438-4419-882a-2fc91d71772f"`                      // The budget line itself
	Realizations string `json:"realizations" example:"https://example.com/v1/budget-lines/3b1ea324-d438-4419-882a-2fc91d71772f/realizations"` // The realization ledger of the line
}

type BudgetLine struct {
	models.DefaultModel
	BudgetLineEditable
	Links BudgetLineLinks `json:"links"`

	// These fields are computed
	Realized     decimal.Decimal   `json:"realized" example:"400000"` // Sum of all realizations of the line
	Balance      decimal.Decimal   `json:"balance" example:"700000"`  // Annual amount minus everything realized
	Realizations []RealizationData `json:"realizations"`              // The realization ledger entries of the line
}

func newBudgetLine(c *gin.Context, model models.BudgetLine) BudgetLine {
	url := httputil.RequestHost(c)

	line := BudgetLine{
		DefaultModel: model.DefaultModel,
		BudgetLineEditable: BudgetLineEditable{
			Type:          model.Type,
			FundingSource: model.FundingSource,
			Standard:      model.Standard,
			Component:     model.Component,
			AccountCode:   model.AccountCode,
			Description:   model.Description,
			Quantity:      model.Quantity,
			Unit:          model.Unit,
			UnitPrice:     model.UnitPrice,
			Amount:        model.Amount,
			PlannedMonths: model.PlannedMonthsOrDefault(),
			Date:          model.Date,
			FiscalYear:    model.FiscalYear,
			Note:          model.Note,
		},
		Links: BudgetLineLinks{
			Self:         fmt.Sprintf("%s/v1/budget-lines/%s", url, model.ID),
			Realizations: fmt.Sprintf("%s/v1/budget-lines/%s/realizations", url, model.ID),
		},
		Realized: model.CumulativeRealized(),
		Balance:  model.RemainingBalance(),
	}

	line.Realizations = make([]RealizationData, 0, len(model.Realizations))
	for i, realization := range model.Realizations {
		line.Realizations = append(line.Realizations, newRealization(i, realization))
	}

	return line
}

type BudgetLineListResponse struct {
	Data       []BudgetLine `json:"data"`                                                          // List of budget lines
	Error      *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination  `json:"pagination"`                                                    // Pagination information
}

type BudgetLineCreateResponse struct {
	Data  []BudgetLineResponse `json:"data"`                                                          // List of the created budget lines or their respective error
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *BudgetLineCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, BudgetLineResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetLineResponse struct {
	Data  *BudgetLine `json:"data"`                                                          // Data for the budget line
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetLineQueryFilter struct {
	Type          string `form:"type"`                            // By line type (INCOME or EXPENSE)
	FundingSource string `form:"fundingSource"`                   // By funding source
	Standard      string `form:"standard"`                        // By education standard
	Component     string `form:"component"`                       // By BOSP component
	AccountCode   string `form:"accountCode"`                     // By account code
	FiscalYear    int    `form:"year"`                            // By fiscal year
	Description   string `form:"description" filterField:"false"` // By description
	Note          string `form:"note" filterField:"false"`        // By note
	Search        string `form:"search" filterField:"false"`      // By string in description or note
	Offset        uint   `form:"offset" filterField:"false"`      // The offset of the first budget line returned. Defaults to 0.
	Limit         int    `form:"limit" filterField:"false"`       // Maximum number of budget lines to return. Defaults to 50.
}

func (f BudgetLineQueryFilter) model() (models.BudgetLine, error) {
	return models.BudgetLine{
		Type:          models.LineType(f.Type),
		FundingSource: models.FundingSource(f.FundingSource),
		Standard:      models.Standard(f.Standard),
		Component:     models.Component(f.Component),
		AccountCode:   f.AccountCode,
		FiscalYear:    f.FiscalYear,
	}, nil
}
