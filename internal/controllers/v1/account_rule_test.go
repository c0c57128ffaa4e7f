package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/rkas-pintar/backend/internal/controllers/v1"
	"github.com/rkas-pintar/backend/internal/models"
	"github.com/rkas-pintar/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestAccountRule(t *testing.T, editable v1.AccountRuleEditable, expectedStatus ...int) v1.AccountRuleResponse {
	if editable.Match == "" {
		editable.Match = "*"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.AccountRuleEditable{editable}

	recorder := test.Request(t, http.MethodPost, "http://example.com/v1/account-rules", body)
	test.AssertHTTPStatus(t, &recorder, expectedStatus...)

	var response v1.AccountRuleCreateResponse
	test.DecodeResponse(t, &recorder, &response)

	return response.Data[0]
}

func (suite *TestSuiteStandard) TestAccountRuleCreate() {
	rule := suite.createTestAccountRule(suite.T(), v1.AccountRuleEditable{
		Priority:    1,
		Match:       "*honor*",
		AccountCode: "5.1.02.02.01.0026",
		Standard:    models.StandardPTK,
		Component:   models.ComponentHonor,
	})

	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/account-rules/%s", rule.Data.ID), rule.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestAccountRuleCreateFails() {
	tests := []struct {
		name          string
		body          any
		expectedError string
	}{
		{"Empty match", []v1.AccountRuleEditable{{Priority: 1}}, "account rules need a pattern to match descriptions against"},
		{"Invalid account code", []v1.AccountRuleEditable{{Match: "*", AccountCode: "abc"}}, "account codes consist of numbers separated by dots, e.g. 5.1.02.01.01.0012"},
		{"Invalid component", []v1.AccountRuleEditable{{Match: "*", Component: "KOMPONEN_SALAH"}}, "the specified BOSP component is invalid"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/account-rules", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.AccountRuleCreateResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.expectedError, *response.Data[0].Error)
		})
	}
}

// TestAccountRuleOrdering verifies that rules are returned in priority
// order since the first matching rule wins during categorization.
func (suite *TestSuiteStandard) TestAccountRuleOrdering() {
	_ = suite.createTestAccountRule(suite.T(), v1.AccountRuleEditable{Priority: 20, Match: "*"})
	_ = suite.createTestAccountRule(suite.T(), v1.AccountRuleEditable{Priority: 10, Match: "*honor*"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/account-rules", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data, 2) {
		assert.Equal(suite.T(), "*honor*", response.Data[0].Match)
		assert.Equal(suite.T(), "*", response.Data[1].Match)
	}
}

func (suite *TestSuiteStandard) TestAccountRuleUpdate() {
	rule := suite.createTestAccountRule(suite.T(), v1.AccountRuleEditable{Priority: 1, Match: "*honor*"})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{
		"match": "*honorarium*",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AccountRuleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "*honorarium*", response.Data.Match)
}

func (suite *TestSuiteStandard) TestAccountRuleDelete() {
	rule := suite.createTestAccountRule(suite.T(), v1.AccountRuleEditable{Priority: 1, Match: "*honor*"})

	r := test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
