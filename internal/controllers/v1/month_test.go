package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/rkas-pintar/backend/internal/controllers/v1"
	"github.com/rkas-pintar/backend/internal/models"
	"github.com/rkas-pintar/backend/internal/types"
	"github.com/rkas-pintar/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMonthFailures() {
	tests := []struct {
		name  string
		query string
	}{
		{"Month not set", "year=2024"},
		{"Month invalid", "month=13&year=2024"},
		{"Year not set", "month=3"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/months?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestMonth verifies the rollover allocation: the January share of a
// line planned for every month rolls into February when it was not
// spent.
func (suite *TestSuiteStandard) TestMonth() {
	line := suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{
		Description:   "Langganan internet",
		Standard:      models.StandardSarpras,
		Component:     models.ComponentDayaJasa,
		Amount:        decimal.NewFromInt(1200000),
		PlannedMonths: types.MonthList{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
	})
	_ = suite.recordRealization(suite.T(), line, v1.RealizationEditable{Month: 2, Amount: decimal.NewFromInt(40000)})

	// Income lines never appear in the month view
	_ = suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{
		Type:          models.LineTypeIncome,
		FundingSource: models.FundingBOSPPusat,
		Description:   "BOSP tahap 1",
		Amount:        decimal.NewFromInt(90000000),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months?month=2&year=2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "Februari", response.Data.MonthName)

	if !assert.Len(suite.T(), response.Data.Lines, 1) {
		return
	}

	// Two shares of 100000 passed, 40000 spent, spent month added back:
	// 200000 - 40000 + 40000 = 200000
	monthLine := response.Data.Lines[0]
	assert.True(suite.T(), monthLine.Allocation.Equal(decimal.NewFromInt(200000)), "allocation is %s", monthLine.Allocation)
	assert.True(suite.T(), monthLine.Realized.Equal(decimal.NewFromInt(40000)), "realized is %s", monthLine.Realized)
	assert.True(suite.T(), monthLine.Balance.Equal(decimal.NewFromInt(1160000)), "balance is %s", monthLine.Balance)

	if assert.Len(suite.T(), response.Data.StandardTotals, 1) {
		assert.Equal(suite.T(), models.StandardSarpras, response.Data.StandardTotals[0].Standard)
		assert.True(suite.T(), response.Data.StandardTotals[0].Allocation.Equal(decimal.NewFromInt(200000)))
	}

	assert.True(suite.T(), response.Data.TotalAllocation.Equal(decimal.NewFromInt(200000)))
	assert.True(suite.T(), response.Data.TotalRealized.Equal(decimal.NewFromInt(40000)))
}

// TestMonthBeforePlan verifies that nothing is allocated before the
// first planned month.
func (suite *TestSuiteStandard) TestMonthBeforePlan() {
	_ = suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{
		Description:   "Pembelian buku rapor",
		Amount:        decimal.NewFromInt(600000),
		PlannedMonths: types.MonthList{6, 12},
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months?month=3&year=2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data.Lines, 1) {
		assert.True(suite.T(), response.Data.Lines[0].Allocation.IsZero(), "allocation is %s", response.Data.Lines[0].Allocation)
	}
}
