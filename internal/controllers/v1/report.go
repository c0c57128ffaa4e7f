package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rkas-pintar/backend/internal/httputil"
	"github.com/rkas-pintar/backend/internal/models"
	"github.com/rkas-pintar/backend/internal/report"
)

// RegisterReportRoutes registers the routes for the derived report
// views with the RouterGroup that is passed.
//
// Reports are recomputed from the budget lines on every request,
// nothing is cached.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/recap", OptionsReport)
	r.GET("/recap", GetRecap)
	r.OPTIONS("/reconciliation", OptionsReport)
	r.GET("/reconciliation", GetReconciliation)
	r.OPTIONS("/dashboard", OptionsReport)
	r.GET("/dashboard", GetDashboard)
}

type RecapResponse struct {
	Data  []report.RecapGroup `json:"data"`                                                  // The recap groups for the month
	Error *string             `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

type ReconciliationResponse struct {
	Data  *report.Reconciliation `json:"data"`                                                  // The reconciliation for the month
	Error *string                `json:"error" example:"the month query parameter must be set"` // The error, if any occurred
}

type DashboardResponse struct {
	Data  *report.Dashboard `json:"data"`                                                 // The dashboard totals
	Error *string           `json:"error" example:"the year query parameter must be set"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/recap [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get monthly recap
// @Description	Returns the expense lines of a month grouped by account code. Only groups with spending in the month are included.
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	RecapResponse
// @Failure		400	{object}	RecapResponse
// @Failure		500	{object}	RecapResponse
// @Param			month	query	int	true	"The month, 1 to 12"
// @Param			year	query	int	true	"The fiscal year"
// @Router			/v1/reports/recap [get]
func GetRecap(c *gin.Context) {
	period, err := bindPeriod(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecapResponse{
			Error: &s,
		})
		return
	}

	lines, err := linesForYear(period.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecapResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, RecapResponse{Data: report.MonthlyRecap(lines, period.Month)})
}

// @Summary		Get cash reconciliation
// @Description	Compares the cash balance derived from the books with the bank statement of the month
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ReconciliationResponse
// @Failure		400	{object}	ReconciliationResponse
// @Failure		500	{object}	ReconciliationResponse
// @Param			month	query	int	true	"The month, 1 to 12"
// @Param			year	query	int	true	"The fiscal year"
// @Router			/v1/reports/reconciliation [get]
func GetReconciliation(c *gin.Context) {
	period, err := bindPeriod(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReconciliationResponse{
			Error: &s,
		})
		return
	}

	lines, err := linesForYear(period.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReconciliationResponse{
			Error: &s,
		})
		return
	}

	var statements []models.BankStatement
	err = models.DB.
		Where(&models.BankStatement{FiscalYear: period.Year}).
		Find(&statements).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReconciliationResponse{
			Error: &s,
		})
		return
	}

	data := report.Reconcile(lines, statements, period.Year, period.Month)
	c.JSON(http.StatusOK, ReconciliationResponse{Data: &data})
}

// @Summary		Get dashboard
// @Description	Returns the headline totals of the fiscal year
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		400	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Param			year	query	int	true	"The fiscal year"
// @Router			/v1/reports/dashboard [get]
func GetDashboard(c *gin.Context) {
	var period QueryPeriod
	_ = c.Bind(&period)

	if period.Year == 0 {
		s := errYearNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{
			Error: &s,
		})
		return
	}

	lines, err := linesForYear(period.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &s,
		})
		return
	}

	data := report.Totals(lines)
	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}
