package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/rkas-pintar/backend/internal/controllers/v1"
	"github.com/rkas-pintar/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSnapshotFailures() {
	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"Month not set", "kind=KWITANSI&year=2024", http.StatusBadRequest},
		{"Year not set", "kind=KWITANSI&month=3", http.StatusBadRequest},
		{"No school profile", "kind=KWITANSI&month=3&year=2024", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/documents/snapshot?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestSnapshot() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/school-profile", v1.SchoolProfileEditable{
		Name:       "SDN 1 Sukamaju",
		NPSN:       "20212345",
		FiscalYear: 2024,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	line := suite.createTestBudgetLine(suite.T(), v1.BudgetLineEditable{
		Description: "Pembelian buku perpustakaan",
		Amount:      decimal.NewFromInt(1200000),
	})
	_ = suite.recordRealization(suite.T(), line, v1.RealizationEditable{
		Month:  3,
		Amount: decimal.NewFromInt(1100000),
		Date:   time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		Notes:  "Toko Buku Cerdas",
	})

	// Invalid kind is rejected
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/documents/snapshot?kind=NOTA_DINAS&month=3&year=2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/documents/snapshot?kind=KWITANSI&month=3&year=2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SnapshotResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "SDN 1 Sukamaju", response.Data.School.Name)
	assert.Equal(suite.T(), "Maret", response.Data.MonthName)

	if assert.Len(suite.T(), response.Data.Lines, 1) {
		assert.Equal(suite.T(), "2024-03-12", response.Data.Lines[0].Date)
		assert.Equal(suite.T(), "Toko Buku Cerdas", response.Data.Lines[0].Notes)
		assert.Equal(suite.T(), "Rp1.100.000", response.Data.Lines[0].RealizedFormatted)
	}

	assert.Equal(suite.T(), "Rp1.100.000", response.Data.TotalFormatted)
	assert.Equal(suite.T(), "satu juta seratus ribu rupiah", response.Data.TotalInWords)
}
