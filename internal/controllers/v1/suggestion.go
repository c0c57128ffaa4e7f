package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rkas-pintar/backend/internal/httputil"
	"github.com/rkas-pintar/backend/internal/models"
	"github.com/rkas-pintar/backend/internal/suggest"
)

// Suggester is the collaborator used for advisory categorization. The
// default does nothing, main switches it for a real client when an
// endpoint is configured.
var Suggester suggest.Suggester = suggest.Noop{}

// RegisterSuggestionRoutes registers the routes for advisory
// suggestions with the RouterGroup that is passed.
func RegisterSuggestionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSuggestionList)
	r.POST("", CreateSuggestion)
	r.OPTIONS("/remediation", OptionsSuggestionList)
	r.POST("/remediation", CreateRemediation)
}

type SuggestionRequest struct {
	Description string `json:"description" example:"Pembelian buku perpustakaan" binding:"required"` // The purchase description to categorize
}

type SuggestionResponse struct {
	Data  *suggest.Suggestion `json:"data"`                                               // The advisory categorization
	Error *string             `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

type RemediationRequest struct {
	Indicators []suggest.Indicator `json:"indicators" binding:"required"` // The report card indicators to address
}

type RemediationResponse struct {
	Data  []suggest.RemediationItem `json:"data"`                                               // The suggested remediation activities
	Error *string                   `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Suggestions
// @Success		204
// @Router			/v1/suggestions [options]
func OptionsSuggestionList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Suggest categorization
// @Description	Returns an advisory categorization for a purchase description. Every field is a default the operator can override. When the collaborator is unreachable the account rules are applied instead, so this never fails because of the collaborator.
// @Tags			Suggestions
// @Accept			json
// @Produce		json
// @Success		200			{object}	SuggestionResponse
// @Failure		400			{object}	SuggestionResponse
// @Param			suggestion	body		SuggestionRequest	true	"Suggestion request"
// @Router			/v1/suggestions [post]
func CreateSuggestion(c *gin.Context) {
	var request SuggestionRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SuggestionResponse{
			Error: &s,
		})
		return
	}

	suggestion, err := Suggester.Suggest(c.Request.Context(), request.Description)
	if err != nil {
		suggestion = ruleFallback(request.Description)
	}

	c.JSON(http.StatusOK, SuggestionResponse{Data: &suggestion})
}

// ruleFallback categorizes a description with the account rules when
// the collaborator is unreachable.
func ruleFallback(description string) suggest.Suggestion {
	suggestion := suggest.Suggestion{Eligible: true}

	rules, err := models.AccountRulesByPriority(models.DB)
	if err != nil {
		return suggestion
	}

	rule, ok := models.MatchAccountRule(rules, description)
	if !ok {
		return suggestion
	}

	suggestion.AccountCode = rule.AccountCode
	suggestion.Standard = string(rule.Standard)
	suggestion.Component = string(rule.Component)

	return suggestion
}

// @Summary		Suggest remediation activities
// @Description	Returns budget activities addressing the weak indicators of the school report card. When the collaborator is unreachable the list is empty.
// @Tags			Suggestions
// @Accept			json
// @Produce		json
// @Success		200			{object}	RemediationResponse
// @Failure		400			{object}	RemediationResponse
// @Param			indicators	body		RemediationRequest	true	"Report card indicators"
// @Router			/v1/suggestions/remediation [post]
func CreateRemediation(c *gin.Context) {
	var request RemediationRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RemediationResponse{
			Error: &s,
		})
		return
	}

	items, err := Suggester.Remediate(c.Request.Context(), request.Indicators)
	if err != nil {
		items = []suggest.RemediationItem{}
	}

	c.JSON(http.StatusOK, RemediationResponse{Data: items})
}
