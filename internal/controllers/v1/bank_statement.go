package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rkas-pintar/backend/internal/httputil"
	"github.com/rkas-pintar/backend/internal/models"
	"github.com/rkas-pintar/backend/internal/types"
	"github.com/shopspring/decimal"
)

// RegisterBankStatementRoutes registers the routes for bank statements
// with the RouterGroup that is passed.
func RegisterBankStatementRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBankStatementList)
		r.GET("", GetBankStatements)
		r.POST("", CreateBankStatements)
	}

	// BankStatement with ID
	{
		r.OPTIONS("/:id", OptionsBankStatementDetail)
		r.GET("/:id", GetBankStatement)
		r.PATCH("/:id", UpdateBankStatement)
		r.DELETE("/:id", DeleteBankStatement)
	}
}

// BankStatementEditable represents all user configurable parameters
type BankStatementEditable struct {
	FiscalYear     int             `json:"fiscalYear" example:"2024"`                      // The fiscal year of the statement
	Month          types.Month     `json:"month" example:"3"`                              // The month the statement closes
	ClosingBalance decimal.Decimal `json:"closingBalance" example:"12500000"`              // The closing balance reported by the bank
	Note           string          `json:"note" example:"Rekening koran Maret" default:""` // Notes about the statement
}

func (editable BankStatementEditable) model() models.BankStatement {
	return models.BankStatement{
		FiscalYear:     editable.FiscalYear,
		Month:          editable.Month,
		ClosingBalance: editable.ClosingBalance,
		Note:           editable.Note,
	}
}

type BankStatementLinks struct {
	Self string `json:"self" example:"https://example.com/v1/bank-statements/3b1ea324-d438-4419-882a-2fc91d71772f"` // The bank statement itself
}

type BankStatement struct {
	models.DefaultModel
	BankStatementEditable
	Links BankStatementLinks `json:"links"`
}

func newBankStatement(c *gin.Context, model models.BankStatement) BankStatement {
	url := httputil.RequestHost(c)

	return BankStatement{
		DefaultModel: model.DefaultModel,
		BankStatementEditable: BankStatementEditable{
			FiscalYear:     model.FiscalYear,
			Month:          model.Month,
			ClosingBalance: model.ClosingBalance,
			Note:           model.Note,
		},
		Links: BankStatementLinks{
			Self: fmt.Sprintf("%s/v1/bank-statements/%s", url, model.ID),
		},
	}
}

type BankStatementListResponse struct {
	Data  []BankStatement `json:"data"`                                                          // List of bank statements
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BankStatementCreateResponse struct {
	Data  []BankStatementResponse `json:"data"`                                                          // List of the created bank statements or their respective error
	Error *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *BankStatementCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, BankStatementResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BankStatementResponse struct {
	Data  *BankStatement `json:"data"`                                                          // Data for the bank statement
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BankStatementQueryFilter struct {
	FiscalYear int         `form:"year"`  // By fiscal year
	Month      types.Month `form:"month"` // By month
}

func (f BankStatementQueryFilter) model() (models.BankStatement, error) {
	return models.BankStatement{
		FiscalYear: f.FiscalYear,
		Month:      f.Month,
	}, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BankStatements
// @Success		204
// @Router			/v1/bank-statements [options]
func OptionsBankStatementList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BankStatements
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bank-statements/{id} [options]
func OptionsBankStatementDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.BankStatement{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create bank statements
// @Description	Creates new bank statements. Only one statement can exist per fiscal year and month.
// @Tags			BankStatements
// @Produce		json
// @Success		201				{object}	BankStatementCreateResponse
// @Failure		400				{object}	BankStatementCreateResponse
// @Failure		500				{object}	BankStatementCreateResponse
// @Param			bankStatements	body		[]BankStatementEditable	true	"Bank statements"
// @Router			/v1/bank-statements [post]
func CreateBankStatements(c *gin.Context) {
	var editables []BankStatementEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BankStatementCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := BankStatementCreateResponse{}

	for _, editable := range editables {
		statement := editable.model()

		err = models.DB.Create(&statement).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBankStatement(c, statement)
		r.Data = append(r.Data, BankStatementResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get bank statements
// @Description	Returns a list of bank statements
// @Tags			BankStatements
// @Produce		json
// @Success		200	{object}	BankStatementListResponse
// @Failure		400	{object}	BankStatementListResponse
// @Failure		500	{object}	BankStatementListResponse
// @Router			/v1/bank-statements [get]
// @Param			year	query	int	false	"Filter by fiscal year"
// @Param			month	query	int	false	"Filter by month"
func GetBankStatements(c *gin.Context) {
	var filter BankStatementQueryFilter
	_ = c.Bind(&filter)

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankStatementListResponse{
			Error: &s,
		})
		return
	}

	var statements []models.BankStatement
	err = models.DB.
		Order("fiscal_year ASC, month ASC").
		Where(&filterModel, queryFields...).
		Find(&statements).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankStatementListResponse{
			Error: &s,
		})
		return
	}

	data := make([]BankStatement, 0, len(statements))
	for _, statement := range statements {
		data = append(data, newBankStatement(c, statement))
	}

	c.JSON(http.StatusOK, BankStatementListResponse{Data: data})
}

// @Summary		Get bank statement
// @Description	Returns a specific bank statement
// @Tags			BankStatements
// @Produce		json
// @Success		200	{object}	BankStatementResponse
// @Failure		400	{object}	BankStatementResponse
// @Failure		404	{object}	BankStatementResponse
// @Failure		500	{object}	BankStatementResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bank-statements/{id} [get]
func GetBankStatement(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankStatementResponse{
			Error: &s,
		})
		return
	}

	var statement models.BankStatement
	err = models.DB.First(&statement, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankStatementResponse{
			Error: &s,
		})
		return
	}

	data := newBankStatement(c, statement)
	c.JSON(http.StatusOK, BankStatementResponse{Data: &data})
}

// @Summary		Update bank statement
// @Description	Update an existing bank statement. Only values to be updated need to be specified.
// @Tags			BankStatements
// @Accept			json
// @Produce		json
// @Success		200				{object}	BankStatementResponse
// @Failure		400				{object}	BankStatementResponse
// @Failure		404				{object}	BankStatementResponse
// @Failure		500				{object}	BankStatementResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			bankStatement	body		BankStatementEditable	true	"Bank statement"
// @Router			/v1/bank-statements/{id} [patch]
func UpdateBankStatement(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankStatementResponse{
			Error: &s,
		})
		return
	}

	var statement models.BankStatement
	err = models.DB.First(&statement, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankStatementResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BankStatementEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankStatementResponse{
			Error: &s,
		})
		return
	}

	var data BankStatementEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankStatementResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&statement).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BankStatementResponse{
			Error: &s,
		})
		return
	}

	r := newBankStatement(c, statement)
	c.JSON(http.StatusOK, BankStatementResponse{Data: &r})
}

// @Summary		Delete bank statement
// @Description	Deletes a bank statement
// @Tags			BankStatements
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/bank-statements/{id} [delete]
func DeleteBankStatement(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var statement models.BankStatement
	err = models.DB.First(&statement, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&statement).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
