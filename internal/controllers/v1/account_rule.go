package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rkas-pintar/backend/internal/httputil"
	"github.com/rkas-pintar/backend/internal/models"
)

// RegisterAccountRuleRoutes registers the routes for account rules with
// the RouterGroup that is passed.
func RegisterAccountRuleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsAccountRuleList)
		r.GET("", GetAccountRules)
		r.POST("", CreateAccountRules)
	}

	// AccountRule with ID
	{
		r.OPTIONS("/:id", OptionsAccountRuleDetail)
		r.GET("/:id", GetAccountRule)
		r.PATCH("/:id", UpdateAccountRule)
		r.DELETE("/:id", DeleteAccountRule)
	}
}

// AccountRuleEditable represents all user configurable parameters
type AccountRuleEditable struct {
	Priority    uint             `json:"priority" example:"1"`                               // Rules with lower priority are evaluated first
	Match       string           `json:"match" example:"*honor*"`                            // Glob pattern matched against expense descriptions
	AccountCode string           `json:"accountCode" example:"5.1.02.02.01.0026" default:""` // The account code the rule assigns
	Standard    models.Standard  `json:"standard" example:"PTK" default:""`                  // The education standard the rule assigns
	Component   models.Component `json:"component" example:"PEMBAYARAN_HONOR" default:""`    // The BOSP component the rule assigns
}

func (editable AccountRuleEditable) model() models.AccountRule {
	return models.AccountRule{
		Priority:    editable.Priority,
		Match:       editable.Match,
		AccountCode: editable.AccountCode,
		Standard:    editable.Standard,
		Component:   editable.Component,
	}
}

type AccountRuleLinks struct {
	Self string `json:"self" example:"https://example.com/v1/account-rules/3b1ea324-d438-4419-882a-2fc91d71772f"` // The account rule itself
}

type AccountRule struct {
	models.DefaultModel
	AccountRuleEditable
	Links AccountRuleLinks `json:"links"`
}

func newAccountRule(c *gin.Context, model models.AccountRule) AccountRule {
	url := httputil.RequestHost(c)

	return AccountRule{
		DefaultModel: model.DefaultModel,
		AccountRuleEditable: AccountRuleEditable{
			Priority:    model.Priority,
			Match:       model.Match,
			AccountCode: model.AccountCode,
			Standard:    model.Standard,
			Component:   model.Component,
		},
		Links: AccountRuleLinks{
			Self: fmt.Sprintf("%s/v1/account-rules/%s", url, model.ID),
		},
	}
}

type AccountRuleListResponse struct {
	Data  []AccountRule `json:"data"`                                                          // List of account rules
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountRuleCreateResponse struct {
	Data  []AccountRuleResponse `json:"data"`                                                          // List of the created account rules or their respective error
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *AccountRuleCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, AccountRuleResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountRuleResponse struct {
	Data  *AccountRule `json:"data"`                                                          // Data for the account rule
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			AccountRules
// @Success		204
// @Router			/v1/account-rules [options]
func OptionsAccountRuleList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			AccountRules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/account-rules/{id} [options]
func OptionsAccountRuleDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.AccountRule{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create account rules
// @Description	Creates new account rules for offline categorization
// @Tags			AccountRules
// @Produce		json
// @Success		201				{object}	AccountRuleCreateResponse
// @Failure		400				{object}	AccountRuleCreateResponse
// @Failure		500				{object}	AccountRuleCreateResponse
// @Param			accountRules	body		[]AccountRuleEditable	true	"Account rules"
// @Router			/v1/account-rules [post]
func CreateAccountRules(c *gin.Context) {
	var editables []AccountRuleEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountRuleCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := AccountRuleCreateResponse{}

	for _, editable := range editables {
		rule := editable.model()

		err = models.DB.Create(&rule).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newAccountRule(c, rule)
		r.Data = append(r.Data, AccountRuleResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get account rules
// @Description	Returns all account rules, ordered by priority
// @Tags			AccountRules
// @Produce		json
// @Success		200	{object}	AccountRuleListResponse
// @Failure		500	{object}	AccountRuleListResponse
// @Router			/v1/account-rules [get]
func GetAccountRules(c *gin.Context) {
	rules, err := models.AccountRulesByPriority(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountRuleListResponse{
			Error: &s,
		})
		return
	}

	data := make([]AccountRule, 0, len(rules))
	for _, rule := range rules {
		data = append(data, newAccountRule(c, rule))
	}

	c.JSON(http.StatusOK, AccountRuleListResponse{Data: data})
}

// @Summary		Get account rule
// @Description	Returns a specific account rule
// @Tags			AccountRules
// @Produce		json
// @Success		200	{object}	AccountRuleResponse
// @Failure		400	{object}	AccountRuleResponse
// @Failure		404	{object}	AccountRuleResponse
// @Failure		500	{object}	AccountRuleResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/account-rules/{id} [get]
func GetAccountRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountRuleResponse{
			Error: &s,
		})
		return
	}

	var rule models.AccountRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountRuleResponse{
			Error: &s,
		})
		return
	}

	data := newAccountRule(c, rule)
	c.JSON(http.StatusOK, AccountRuleResponse{Data: &data})
}

// @Summary		Update account rule
// @Description	Update an existing account rule. Only values to be updated need to be specified.
// @Tags			AccountRules
// @Accept			json
// @Produce		json
// @Success		200			{object}	AccountRuleResponse
// @Failure		400			{object}	AccountRuleResponse
// @Failure		404			{object}	AccountRuleResponse
// @Failure		500			{object}	AccountRuleResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			accountRule	body		AccountRuleEditable	true	"Account rule"
// @Router			/v1/account-rules/{id} [patch]
func UpdateAccountRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountRuleResponse{
			Error: &s,
		})
		return
	}

	var rule models.AccountRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountRuleResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AccountRuleEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountRuleResponse{
			Error: &s,
		})
		return
	}

	var data AccountRuleEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountRuleResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&rule).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AccountRuleResponse{
			Error: &s,
		})
		return
	}

	r := newAccountRule(c, rule)
	c.JSON(http.StatusOK, AccountRuleResponse{Data: &r})
}

// @Summary		Delete account rule
// @Description	Deletes an account rule
// @Tags			AccountRules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/account-rules/{id} [delete]
func DeleteAccountRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var rule models.AccountRule
	err = models.DB.First(&rule, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
