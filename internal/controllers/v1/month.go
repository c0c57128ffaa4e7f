package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rkas-pintar/backend/internal/httputil"
	"github.com/rkas-pintar/backend/internal/models"
	"github.com/rkas-pintar/backend/internal/types"
	"github.com/shopspring/decimal"
)

// RegisterMonthRoutes registers the routes for the month view with the
// RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMonth)
	r.GET("", GetMonth)
}

// MonthLine is the computed state of one expense line for a month.
type MonthLine struct {
	ID          uuid.UUID        `json:"id" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the budget line
	Description string           `json:"description" example:"Pembelian buku perpustakaan"`
	AccountCode string           `json:"accountCode" example:"5.1.02.01.01.0024"`
	Standard    models.Standard  `json:"standard" example:"SARPRAS"`
	Component   models.Component `json:"component" example:"PENGEMBANGAN_PERPUSTAKAAN"`
	Amount      decimal.Decimal  `json:"amount" example:"1100000"`    // The annual amount (pagu) of the line
	Allocation  decimal.Decimal  `json:"allocation" example:"400000"` // Spendable amount for the month, including rollover
	Realized    decimal.Decimal  `json:"realized" example:"150000"`   // Amount realized in the month
	Cumulative  decimal.Decimal  `json:"cumulative" example:"550000"` // Amount realized across all months
	Balance     decimal.Decimal  `json:"balance" example:"550000"`    // Annual amount minus everything realized
}

// StandardTotal sums the month figures for one education standard.
type StandardTotal struct {
	Standard   models.Standard `json:"standard" example:"SARPRAS"`
	Allocation decimal.Decimal `json:"allocation" example:"400000"`
	Realized   decimal.Decimal `json:"realized" example:"150000"`
}

type MonthData struct {
	Month           types.Month     `json:"month" example:"3"`
	MonthName       string          `json:"monthName" example:"Maret"`
	Year            int             `json:"year" example:"2024"`
	Lines           []MonthLine     `json:"lines"`
	StandardTotals  []StandardTotal `json:"standardTotals"`
	TotalAllocation decimal.Decimal `json:"totalAllocation" example:"2500000"`
	TotalRealized   decimal.Decimal `json:"totalRealized" example:"900000"`
}

type MonthResponse struct {
	Data  *MonthData `json:"data"`                                                  // Data for the month
	Error *string    `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get month
// @Description	Returns the computed allocation state of all expense lines for a month
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthResponse
// @Failure		400	{object}	MonthResponse
// @Failure		500	{object}	MonthResponse
// @Param			month	query	int	true	"The month, 1 to 12"
// @Param			year	query	int	true	"The fiscal year"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	period, err := bindPeriod(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	lines, err := expenseLinesForYear(period.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	data := MonthData{
		Month:           period.Month,
		MonthName:       period.Month.String(),
		Year:            period.Year,
		Lines:           make([]MonthLine, 0, len(lines)),
		TotalAllocation: decimal.Zero,
		TotalRealized:   decimal.Zero,
	}

	standardTotals := make(map[models.Standard]*StandardTotal)
	var standardOrder []models.Standard

	for _, line := range lines {
		allocation := line.MonthlyAllocation(period.Month)
		realized := line.RealizedInMonth(period.Month)

		data.Lines = append(data.Lines, MonthLine{
			ID:          line.ID,
			Description: line.Description,
			AccountCode: line.AccountCode,
			Standard:    line.Standard,
			Component:   line.Component,
			Amount:      line.Amount,
			Allocation:  allocation,
			Realized:    realized,
			Cumulative:  line.CumulativeRealized(),
			Balance:     line.RemainingBalance(),
		})

		data.TotalAllocation = data.TotalAllocation.Add(allocation)
		data.TotalRealized = data.TotalRealized.Add(realized)

		if line.Standard == "" {
			continue
		}

		total, ok := standardTotals[line.Standard]
		if !ok {
			total = &StandardTotal{
				Standard:   line.Standard,
				Allocation: decimal.Zero,
				Realized:   decimal.Zero,
			}
			standardTotals[line.Standard] = total
			standardOrder = append(standardOrder, line.Standard)
		}

		total.Allocation = total.Allocation.Add(allocation)
		total.Realized = total.Realized.Add(realized)
	}

	data.StandardTotals = make([]StandardTotal, 0, len(standardOrder))
	for _, standard := range standardOrder {
		data.StandardTotals = append(data.StandardTotals, *standardTotals[standard])
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// bindPeriod binds and validates the month/year query parameters used
// by the computed views.
func bindPeriod(c *gin.Context) (QueryPeriod, error) {
	var period QueryPeriod
	if err := c.Bind(&period); err != nil {
		return QueryPeriod{}, err
	}

	if period.Month == 0 {
		return QueryPeriod{}, errMonthNotSetInQuery
	}

	if !period.Month.Valid() {
		return QueryPeriod{}, types.ErrMonthInvalid
	}

	if period.Year == 0 {
		return QueryPeriod{}, errYearNotSetInQuery
	}

	return period, nil
}

// expenseLinesForYear loads all expense lines of a fiscal year with
// their realization ledgers.
func expenseLinesForYear(year int) ([]models.BudgetLine, error) {
	var lines []models.BudgetLine
	err := withRealizations(models.DB).
		Order("account_code ASC, created_at ASC").
		Where(&models.BudgetLine{Type: models.LineTypeExpense, FiscalYear: year}).
		Find(&lines).Error

	return lines, err
}

// linesForYear loads all budget lines of a fiscal year with their
// realization ledgers.
func linesForYear(year int) ([]models.BudgetLine, error) {
	var lines []models.BudgetLine
	err := withRealizations(models.DB).
		Where(&models.BudgetLine{FiscalYear: year}).
		Find(&lines).Error

	return lines, err
}
