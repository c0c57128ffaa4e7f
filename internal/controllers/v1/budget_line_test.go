package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/rkas-pintar/backend/internal/controllers/v1"
	"github.com/rkas-pintar/backend/internal/models"
	"github.com/rkas-pintar/backend/internal/types"
	"github.com/rkas-pintar/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBudgetLineCreate() {
	tests := []struct {
		name           string
		create         []v1.BudgetLineEditable
		expectedErrors []string
		expectedStatus int
	}{
		{
			"All successful",
			[]v1.BudgetLineEditable{
				{
					Type:        models.LineTypeExpense,
					Standard:    models.StandardSarpras,
					Component:   models.ComponentPerpustakaan,
					AccountCode: "5.1.02.01.01.0024",
					Description: "Pembelian buku perpustakaan",
					Amount:      decimal.NewFromInt(1100000),
					FiscalYear:  2024,
				},
				{
					Type:          models.LineTypeIncome,
					FundingSource: models.FundingBOSPPusat,
					Description:   "BOSP tahap 1",
					Amount:        decimal.NewFromInt(90000000),
					FiscalYear:    2024,
				},
			},
			[]string{
				"",
				"",
			},
			http.StatusCreated,
		},
		{
			"Expense without account code",
			[]v1.BudgetLineEditable{
				{
					Type:        models.LineTypeExpense,
					Description: "Tanpa kode rekening",
					Amount:      decimal.NewFromInt(100000),
					FiscalYear:  2024,
				},
			},
			[]string{
				"expense lines need an account code",
			},
			http.StatusBadRequest,
		},
		{
			"Invalid standard",
			[]v1.BudgetLineEditable{
				{
					Type:        models.LineTypeExpense,
					Standard:    "STANDAR_SALAH",
					AccountCode: "5.1.02.01.01.0024",
					Description: "Standar tidak dikenal",
					Amount:      decimal.NewFromInt(100000),
					FiscalYear:  2024,
				},
			},
			[]string{
				"the specified education standard is invalid",
			},
			http.StatusBadRequest,
		},
		{
			"Missing fiscal year",
			[]v1.BudgetLineEditable{
				{
					Type:        models.LineTypeExpense,
					AccountCode: "5.1.02.01.01.0024",
					Description: "Tanpa tahun anggaran",
					Amount:      decimal.NewFromInt(100000),
				},
			},
			[]string{
				"the fiscal year must be set",
			},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/budget-lines", tt.create)
			test.AssertHTTPStatus(t, &r, tt.expectedStatus)

			var response v1.BudgetLineCreateResponse
			test.DecodeResponse(t, &r, &response)

			for i, line := range response.Data {
				if tt.expectedErrors[i] != "" {
					assert.Equal(t, tt.expectedErrors[i], *line.Error)
				} else {
					assert.Equal(t, fmt.Sprintf("http://example.com/v1/budget-lines/%s", line.Data.ID), line.Data.Links.Self)
				}
			}
		})
	}
}

// TestBudgetLineCreateDerivesAmount verifies that the annual amount is
// derived from quantity times unit price when it is not set.
func (suite *TestSuiteStandard) TestBudgetLineCreateDerivesAmount() {
	line := suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{
		Description: "Kertas HVS",
		Quantity:    decimal.NewFromInt(20),
		Unit:        "rim",
		UnitPrice:   decimal.NewFromInt(55000),
		Amount:      decimal.NewFromInt(0),
	})

	assert.True(suite.T(), line.Data.Amount.Equal(decimal.NewFromInt(1100000)), "amount is %s", line.Data.Amount)
}

func (suite *TestSuiteStandard) TestBudgetLineGetSingle() {
	line := suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{
		Description:   "Langganan internet",
		Standard:      models.StandardSarpras,
		Component:     models.ComponentDayaJasa,
		PlannedMonths: types.MonthList{1, 4, 7, 10},
	})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing", line.Data.ID.String(), http.StatusOK},
		{"Does not exist", uuid.New().String(), http.StatusNotFound},
		{"Invalid UUID", "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budget-lines/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status != http.StatusOK {
				return
			}

			var response v1.BudgetLineResponse
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, "Langganan internet", response.Data.Description)
			assert.Equal(t, types.MonthList{1, 4, 7, 10}, response.Data.PlannedMonths)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetLineGetFiltered() {
	_ = suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{
		Description: "Honor guru honorer",
		Standard:    models.StandardPTK,
		Component:   models.ComponentHonor,
		AccountCode: "5.1.02.02.01.0026",
	})
	_ = suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{
		Description: "Pembelian buku perpustakaan",
		Standard:    models.StandardSarpras,
		Component:   models.ComponentPerpustakaan,
	})
	_ = suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{
		Type:          models.LineTypeIncome,
		FundingSource: models.FundingBOSPPusat,
		Description:   "BOSP tahap 1",
	})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"No filter", "", 3},
		{"By type", "type=INCOME", 1},
		{"By standard", "standard=PTK", 1},
		{"By component", "component=PENGEMBANGAN_PERPUSTAKAAN", 1},
		{"By account code", "accountCode=5.1.02.02.01.0026", 1},
		{"By funding source", "fundingSource=BOSP_PUSAT", 1},
		{"Search", "search=buku", 1},
		{"Search in both fields", "search=honor", 1},
		{"By year without match", "year=2031", 0},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budget-lines?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetLineListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.count)
		})
	}
}

// TestBudgetLineOrdering verifies that lines are sorted by their account
// code, which is the order they appear in on the printed RKAS.
func (suite *TestSuiteStandard) TestBudgetLineOrdering() {
	_ = suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{Description: "Later", AccountCode: "5.1.02.02.01.0026"})
	_ = suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{Description: "Earlier", AccountCode: "5.1.02.01.01.0012"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budget-lines", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetLineListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data, 2) {
		assert.Equal(suite.T(), "Earlier", response.Data[0].Description)
		assert.Equal(suite.T(), "Later", response.Data[1].Description)
	}
}

func (suite *TestSuiteStandard) TestBudgetLineUpdate() {
	line := suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{Description: "Pemeliharaan gedung"})

	r := test.Request(suite.T(), http.MethodPatch, line.Data.Links.Self, map[string]any{
		"note": "Realisasi menunggu pencairan tahap 2",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetLineResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "Realisasi menunggu pencairan tahap 2", response.Data.Note)
	assert.Equal(suite.T(), "Pemeliharaan gedung", response.Data.Description)
}

func (suite *TestSuiteStandard) TestBudgetLineUpdateFails() {
	line := suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{Description: "Pemeliharaan gedung"})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Invalid body", `{ "description": "def`, http.StatusBadRequest},
		{"Invalid type", `{ "amount": "not a number" }`, http.StatusBadRequest},
		{"Invalid standard", map[string]any{"standard": "STANDAR_SALAH"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, line.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetLineDelete() {
	line := suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{Description: "Dihapus"})

	r := test.Request(suite.T(), http.MethodDelete, line.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, line.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestBudgetLineOptions() {
	line := suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		allow  string
	}{
		{"Existing", line.Data.ID.String(), http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Does not exist", uuid.New().String(), http.StatusNotFound, ""},
		{"Invalid UUID", "definitely-not-a-uuid", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/budget-lines/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.allow != "" {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}
