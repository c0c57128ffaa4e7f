package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rkas-pintar/backend/internal/httputil"
	"github.com/rkas-pintar/backend/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterBudgetLineRoutes registers the routes for budget lines with
// the RouterGroup that is passed.
func RegisterBudgetLineRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetLineList)
		r.GET("", GetBudgetLines)
		r.POST("", CreateBudgetLines)
	}

	// BudgetLine with ID
	{
		r.OPTIONS("/:id", OptionsBudgetLineDetail)
		r.GET("/:id", GetBudgetLine)
		r.PATCH("/:id", UpdateBudgetLine)
		r.DELETE("/:id", DeleteBudgetLine)
	}

	// Realization ledger of the line
	{
		r.OPTIONS("/:id/realizations", OptionsRealizationList)
		r.GET("/:id/realizations", GetRealizations)
		r.POST("/:id/realizations", CreateRealization)
		r.OPTIONS("/:id/realizations/:index", OptionsRealizationDetail)
		r.PATCH("/:id/realizations/:index", UpdateRealization)
		r.DELETE("/:id/realizations/:index", DeleteRealization)
	}
}

// withRealizations preloads the realization ledger in insertion order.
func withRealizations(db *gorm.DB) *gorm.DB {
	return db.Preload("Realizations", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BudgetLines
// @Success		204
// @Router			/v1/budget-lines [options]
func OptionsBudgetLineList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			BudgetLines
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-lines/{id} [options]
func OptionsBudgetLineDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.BudgetLine{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create budget lines
// @Description	Creates new budget lines
// @Tags			BudgetLines
// @Produce		json
// @Success		201				{object}	BudgetLineCreateResponse
// @Failure		400				{object}	BudgetLineCreateResponse
// @Failure		500				{object}	BudgetLineCreateResponse
// @Param			budgetLines	body		[]BudgetLineEditable	true	"Budget lines"
// @Router			/v1/budget-lines [post]
func CreateBudgetLines(c *gin.Context) {
	var editables []BudgetLineEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetLineCreateResponse{}

	for _, editable := range editables {
		line := editable.model()

		err = models.DB.Create(&line).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBudgetLine(c, line)
		r.Data = append(r.Data, BudgetLineResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get budget lines
// @Description	Returns a list of budget lines
// @Tags			BudgetLines
// @Produce		json
// @Success		200	{object}	BudgetLineListResponse
// @Failure		400	{object}	BudgetLineListResponse
// @Failure		500	{object}	BudgetLineListResponse
// @Router			/v1/budget-lines [get]
// @Param			type			query	string	false	"Filter by line type"
// @Param			fundingSource	query	string	false	"Filter by funding source"
// @Param			standard		query	string	false	"Filter by education standard"
// @Param			component		query	string	false	"Filter by BOSP component"
// @Param			accountCode		query	string	false	"Filter by account code"
// @Param			year			query	int		false	"Filter by fiscal year"
// @Param			description		query	string	false	"Filter by description"
// @Param			note			query	string	false	"Filter by note"
// @Param			search			query	string	false	"Search for this text in description and note"
// @Param			offset			query	uint	false	"The offset of the first budget line returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of budget lines to return. Defaults to 50."
func GetBudgetLines(c *gin.Context) {
	var filter BudgetLineQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineListResponse{
			Error: &s,
		})
		return
	}

	q := withRealizations(models.DB).
		Order("account_code ASC, created_at ASC").
		Where(&filterModel, queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Description, filter.Note, filter.Search)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 budget lines and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var lines []models.BudgetLine
	err = q.Find(&lines).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLineListResponse{
			Error: &e,
		})
		return
	}

	data := make([]BudgetLine, 0, len(lines))
	for _, line := range lines {
		data = append(data, newBudgetLine(c, line))
	}

	c.JSON(http.StatusOK, BudgetLineListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get budget line
// @Description	Returns a specific budget line with its realization ledger
// @Tags			BudgetLines
// @Produce		json
// @Success		200	{object}	BudgetLineResponse
// @Failure		400	{object}	BudgetLineResponse
// @Failure		404	{object}	BudgetLineResponse
// @Failure		500	{object}	BudgetLineResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-lines/{id} [get]
func GetBudgetLine(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &s,
		})
		return
	}

	line, err := models.BudgetLineWithRealizations(models.DB, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &s,
		})
		return
	}

	data := newBudgetLine(c, line)
	c.JSON(http.StatusOK, BudgetLineResponse{Data: &data})
}

// @Summary		Update budget line
// @Description	Update an existing budget line. Only values to be updated need to be specified.
// @Tags			BudgetLines
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetLineResponse
// @Failure		400			{object}	BudgetLineResponse
// @Failure		404			{object}	BudgetLineResponse
// @Failure		500			{object}	BudgetLineResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budgetLine	body		BudgetLineEditable	true	"Budget line"
// @Router			/v1/budget-lines/{id} [patch]
func UpdateBudgetLine(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &s,
		})
		return
	}

	line, err := models.BudgetLineWithRealizations(models.DB, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetLineEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &s,
		})
		return
	}

	var data BudgetLineEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&line).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &s,
		})
		return
	}

	r := newBudgetLine(c, line)
	c.JSON(http.StatusOK, BudgetLineResponse{Data: &r})
}

// @Summary		Delete budget line
// @Description	Deletes a budget line and its realization ledger
// @Tags			BudgetLines
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-lines/{id} [delete]
func DeleteBudgetLine(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var line models.BudgetLine
	err = models.DB.First(&line, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&line).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
