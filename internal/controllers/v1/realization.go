package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rkas-pintar/backend/internal/httputil"
	"github.com/rkas-pintar/backend/internal/models"
)

// The realization ledger is addressed through its owning budget line.
// Entries have no routes of their own since they only exist as part of
// the line's ordered list.

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Realizations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-lines/{id}/realizations [options]
func OptionsRealizationList(c *gin.Context) {
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

	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Realizations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id		path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			index	path	int		true	"Index of the realization"
// @Router			/v1/budget-lines/{id}/realizations/{index} [options]
func OptionsRealizationDetail(c *gin.Context) {
	var uri URIIndex
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	line, err := models.BudgetLineWithRealizations(models.DB, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if uri.Index < 0 || uri.Index >= len(line.Realizations) {
		c.JSON(status(models.ErrRealizationIndexInvalid), httpError{
			Error: models.ErrRealizationIndexInvalid.Error(),
		})
		return
	}

	httputil.OptionsPatchDelete(c)
}

// @Summary		Get realizations
// @Description	Returns the realization ledger of a budget line
// @Tags			Realizations
// @Produce		json
// @Success		200	{object}	RealizationListResponse
// @Failure		400	{object}	RealizationListResponse
// @Failure		404	{object}	RealizationListResponse
// @Failure		500	{object}	RealizationListResponse
// @Param			id		path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	query	int		false	"Only entries booked in this month"
// @Router			/v1/budget-lines/{id}/realizations [get]
func GetRealizations(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RealizationListResponse{
			Error: &s,
		})
		return
	}

	var filter RealizationQueryFilter
	_ = c.Bind(&filter)

	line, err := models.BudgetLineWithRealizations(models.DB, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RealizationListResponse{
			Error: &s,
		})
		return
	}

	data := make([]RealizationData, 0, len(line.Realizations))
	for i, realization := range line.Realizations {
		if filter.Month != 0 && realization.Month != filter.Month {
			continue
		}

		data = append(data, newRealization(i, realization))
	}

	c.JSON(http.StatusOK, RealizationListResponse{Data: data})
}

// @Summary		Record realization
// @Description	Records a spend against a budget line. With batch=true, all existing entries for the entry's month are replaced by this one consolidated entry.
// @Tags			Realizations
// @Accept			json
// @Produce		json
// @Success		201			{object}	BudgetLineResponse
// @Failure		400			{object}	BudgetLineResponse
// @Failure		404			{object}	BudgetLineResponse
// @Failure		500			{object}	BudgetLineResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			batch		query		bool				false	"Replace all entries of the month with this consolidated entry"
// @Param			realization	body		RealizationEditable	true	"Realization"
// @Router			/v1/budget-lines/{id}/realizations [post]
func CreateRealization(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &s,
		})
		return
	}

	var filter RealizationQueryFilter
	_ = c.Bind(&filter)

	var editable RealizationEditable
	err = httputil.BindData(c, &editable)
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

	if filter.Batch {
		err = models.ReplaceRealizationsForMonth(models.DB, &line, editable.model())
	} else {
		err = models.AddOrReplaceRealization(models.DB, &line, editable.model(), -1)
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &s,
		})
		return
	}

	data := newBudgetLine(c, line)
	c.JSON(http.StatusCreated, BudgetLineResponse{Data: &data})
}

// @Summary		Update realization
// @Description	Replaces the realization at the given index
// @Tags			Realizations
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetLineResponse
// @Failure		400			{object}	BudgetLineResponse
// @Failure		404			{object}	BudgetLineResponse
// @Failure		500			{object}	BudgetLineResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			index		path		int					true	"Index of the realization"
// @Param			realization	body		RealizationEditable	true	"Realization"
// @Router			/v1/budget-lines/{id}/realizations/{index} [patch]
func UpdateRealization(c *gin.Context) {
	var uri URIIndex
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetLineResponse{
			Error: &s,
		})
		return
	}

	var editable RealizationEditable
	err = httputil.BindData(c, &editable)
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

	err = models.AddOrReplaceRealization(models.DB, &line, editable.model(), uri.Index)
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

// @Summary		Delete realization
// @Description	Deletes the realization at the given index. The response contains the index of the entry re-selected for the same month, or -1 if none remains.
// @Tags			Realizations
// @Produce		json
// @Success		200		{object}	RealizationDeleteResponse
// @Failure		400		{object}	RealizationDeleteResponse
// @Failure		404		{object}	RealizationDeleteResponse
// @Failure		500		{object}	RealizationDeleteResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			index	path		int		true	"Index of the realization"
// @Router			/v1/budget-lines/{id}/realizations/{index} [delete]
func DeleteRealization(c *gin.Context) {
	var uri URIIndex
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RealizationDeleteResponse{
			CurrentIndex: -1,
			Error:        &s,
		})
		return
	}

	line, err := models.BudgetLineWithRealizations(models.DB, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RealizationDeleteResponse{
			CurrentIndex: -1,
			Error:        &s,
		})
		return
	}

	current, err := models.DeleteRealization(models.DB, &line, uri.Index)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RealizationDeleteResponse{
			CurrentIndex: -1,
			Error:        &s,
		})
		return
	}

	c.JSON(http.StatusOK, RealizationDeleteResponse{CurrentIndex: current})
}
