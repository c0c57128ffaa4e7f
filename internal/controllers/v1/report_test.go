package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/rkas-pintar/backend/internal/controllers/v1"
	"github.com/rkas-pintar/backend/internal/models"
	"github.com/rkas-pintar/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestReportFailures() {
	tests := []struct {
		name string
		path string
	}{
		{"Recap without month", "reports/recap?year=2024"},
		{"Recap with invalid month", "reports/recap?month=0&year=2024"},
		{"Reconciliation without year", "reports/reconciliation?month=3"},
		{"Dashboard without year", "reports/dashboard"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestRecap() {
	first := suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{AccountCode: "5.1.02.01.01.0012", Amount: decimal.NewFromInt(1200000)})
	second := suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{AccountCode: "5.1.02.01.01.0012", Amount: decimal.NewFromInt(300000)})
	third := suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{AccountCode: "5.1.02.02.01.0026", Amount: decimal.NewFromInt(500000)})

	_ = suite.recordRealization(suite.T(), first, v1.RealizationEditable{Month: 2, Amount: decimal.NewFromInt(400000)})
	_ = suite.recordRealization(suite.T(), first, v1.RealizationEditable{Month: 3, Amount: decimal.NewFromInt(100000)})
	_ = suite.recordRealization(suite.T(), second, v1.RealizationEditable{Month: 3, Amount: decimal.NewFromInt(50000)})

	// No realization in March, so this group does not appear
	_ = suite.recordRealization(suite.T(), third, v1.RealizationEditable{Month: 2, Amount: decimal.NewFromInt(75000)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/recap?month=3&year=2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RecapResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if !assert.Len(suite.T(), response.Data, 1) {
		return
	}

	group := response.Data[0]
	assert.Equal(suite.T(), "5.1.02.01.01.0012", group.AccountCode)
	assert.True(suite.T(), group.Budget.Equal(decimal.NewFromInt(1500000)), "budget is %s", group.Budget)
	assert.True(suite.T(), group.Past.Equal(decimal.NewFromInt(400000)), "past is %s", group.Past)
	assert.True(suite.T(), group.Current.Equal(decimal.NewFromInt(150000)), "current is %s", group.Current)
	assert.True(suite.T(), group.TotalToDate.Equal(decimal.NewFromInt(550000)))
	assert.True(suite.T(), group.Balance.Equal(decimal.NewFromInt(950000)))
}

func (suite *TestSuiteStandard) TestReconciliation() {
	_ = suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{
		Type:          models.LineTypeIncome,
		FundingSource: models.FundingBOSPPusat,
		Description:   "BOSP tahap 1",
		Amount:        decimal.NewFromInt(10000000),
	})

	line := suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{Amount: decimal.NewFromInt(1200000)})
	_ = suite.recordRealization(suite.T(), line, v1.RealizationEditable{Month: 2, Amount: decimal.NewFromInt(400000)})

	_ = suite.createTestBankStatement(suite.T(), v1.BankStatementEditable{
		Month:          3,
		ClosingBalance: decimal.NewFromInt(9600050),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/reconciliation?month=3&year=2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReconciliationResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.HasStatement)
	assert.True(suite.T(), response.Data.SystemBalance.Equal(decimal.NewFromInt(9600000)), "system balance is %s", response.Data.SystemBalance)
	assert.True(suite.T(), response.Data.Difference.Equal(decimal.NewFromInt(-50)), "difference is %s", response.Data.Difference)
	assert.True(suite.T(), response.Data.Balanced)
}

// TestReconciliationWithoutStatement verifies that months without a
// bank statement are reported as not balanced.
func (suite *TestSuiteStandard) TestReconciliationWithoutStatement() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/reconciliation?month=3&year=2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReconciliationResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.False(suite.T(), response.Data.HasStatement)
	assert.False(suite.T(), response.Data.Balanced)
}

func (suite *TestSuiteStandard) TestDashboard() {
	_ = suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{
		Type:          models.LineTypeIncome,
		FundingSource: models.FundingBOSPPusat,
		Description:   "BOSP tahap 1",
		Amount:        decimal.NewFromInt(90000000),
	})

	line := suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{Amount: decimal.NewFromInt(88000000)})
	_ = suite.recordRealization(suite.T(), line, v1.RealizationEditable{Month: 3, Amount: decimal.NewFromInt(31000000)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/dashboard?year=2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.TotalIncome.Equal(decimal.NewFromInt(90000000)))
	assert.True(suite.T(), response.Data.PlannedExpense.Equal(decimal.NewFromInt(88000000)))
	assert.True(suite.T(), response.Data.RealizedExpense.Equal(decimal.NewFromInt(31000000)))
	assert.True(suite.T(), response.Data.CashBalance.Equal(decimal.NewFromInt(59000000)))
	assert.True(suite.T(), response.Data.RemainingBudget.Equal(decimal.NewFromInt(57000000)))
}
