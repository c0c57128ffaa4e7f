package v1

import (
	"time"

	"github.com/rkas-pintar/backend/internal/models"
	"github.com/rkas-pintar/backend/internal/types"
	"github.com/shopspring/decimal"
)

// RealizationEditable represents all user configurable parameters
type RealizationEditable struct {
	Month        types.Month     `json:"month" example:"3"`                               // The month the spend is booked in
	TargetMonth  types.Month     `json:"targetMonth" example:"2" default:"0"`             // The month the spend is conceptually for, defaults to the booking month
	Amount       decimal.Decimal `json:"amount" example:"150000"`                         // The amount actually spent
	Quantity     decimal.Decimal `json:"quantity" example:"5" default:"0"`                // The quantity actually bought
	Date         time.Time       `json:"date" example:"2024-03-12T00:00:00Z"`             // The receipt/voucher date
	Notes        string          `json:"notes" example:"Toko Buku Cerdas" default:""`     // Notes about the spend
	EvidenceFile string          `json:"evidenceFile" example:"nota-buku.pdf" default:""` // Filename reference of the uploaded evidence
}

func (editable RealizationEditable) model() models.Realization {
	return models.Realization{
		Month:        editable.Month,
		TargetMonth:  editable.TargetMonth,
		Amount:       editable.Amount,
		Quantity:     editable.Quantity,
		Date:         editable.Date,
		Notes:        editable.Notes,
		EvidenceFile: editable.EvidenceFile,
	}
}

// RealizationData is one ledger entry of a budget line. Entries are
// addressed by their index within the line, not by their own ID.
type RealizationData struct {
	Index int `json:"index" example:"0"` // Index of the entry within the budget line
	RealizationEditable
}

func newRealization(index int, model models.Realization) RealizationData {
	return RealizationData{
		Index: index,
		RealizationEditable: RealizationEditable{
			Month:        model.Month,
			TargetMonth:  model.TargetMonth,
			Amount:       model.Amount,
			Quantity:     model.Quantity,
			Date:         model.Date,
			Notes:        model.Notes,
			EvidenceFile: model.EvidenceFile,
		},
	}
}

type RealizationListResponse struct {
	Data  []RealizationData `json:"data"`                                                          // The realization ledger entries of the line
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RealizationDeleteResponse struct {
	// CurrentIndex is the index of the entry re-selected for continued
	// editing after the delete. It is -1 when no entry remains for the
	// deleted entry's month.
	CurrentIndex int     `json:"currentIndex" example:"0"`
	Error        *string `json:"error" example:"the specified realization index does not exist"` // The error, if any occurred
}

type RealizationQueryFilter struct {
	Month types.Month `form:"month"` // Only entries booked in this month
	Batch bool        `form:"batch"` // Replace all entries of the month with this one consolidated entry
}
