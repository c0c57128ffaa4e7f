package v1_test

import (
	"net/http"

	v1 "github.com/rkas-pintar/backend/internal/controllers/v1"
	"github.com/rkas-pintar/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExport() {
	line := suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{Description: "TestExport"})
	_ = suite.recordRealization(suite.T(), line, v1.RealizationEditable{Month: 3, Amount: decimal.NewFromInt(1000)})
	_ = suite.createTestBankStatement(suite.T(), v1.BankStatementEditable{Month: 3, ClosingBalance: decimal.NewFromInt(1000)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	for _, name := range []string{"AccountRule", "BankStatement", "BudgetLine", "Realization", "SchoolProfile"} {
		assert.Contains(suite.T(), response.Data, name)
	}
}

func (suite *TestSuiteStandard) TestExportDBError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
