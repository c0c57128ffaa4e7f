package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/rkas-pintar/backend/internal/controllers/v1"
	"github.com/rkas-pintar/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	line := suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{Description: "TestCleanup"})
	_ = suite.recordRealization(suite.T(), line, v1.RealizationEditable{Month: 3, Amount: decimal.NewFromInt(1000)})
	_ = suite.createTestBankStatement(suite.T(), v1.BankStatementEditable{Month: 3, ClosingBalance: decimal.NewFromInt(1000)})
	_ = suite.createTestAccountRule(suite.T(), v1.AccountRuleEditable{Match: "Delete me"})

	tests := []string{
		"http://example.com/v1/budget-lines",
		"http://example.com/v1/bank-statements",
		"http://example.com/v1/account-rules",
	}

	// Delete
	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Verify
	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := test.Request(suite.T(), http.MethodGet, tt, "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

			var response struct {
				Data []any `json:"data"`
			}

			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, 0, "There are resources left for type %s", tt)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"Invalid path", "confirm=2"},
		{"Confirmation wrong", "confirm=invalid-confirmation"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1?%s", tt.path), "")
			test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
