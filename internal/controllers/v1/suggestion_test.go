package v1_test

import (
	"context"
	"errors"
	"net/http"

	v1 "github.com/rkas-pintar/backend/internal/controllers/v1"
	"github.com/rkas-pintar/backend/internal/models"
	"github.com/rkas-pintar/backend/internal/suggest"
	"github.com/rkas-pintar/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// stubSuggester returns canned responses or a canned error, standing in
// for the LLM collaborator.
type stubSuggester struct {
	suggestion  suggest.Suggestion
	remediation []suggest.RemediationItem
	err         error
}

func (s stubSuggester) Suggest(_ context.Context, _ string) (suggest.Suggestion, error) {
	return s.suggestion, s.err
}

func (s stubSuggester) Remediate(_ context.Context, _ []suggest.Indicator) ([]suggest.RemediationItem, error) {
	return s.remediation, s.err
}

func (suite *TestSuiteStandard) TestSuggestionDefault() {
	v1.Suggester = suggest.Noop{}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/suggestions", v1.SuggestionRequest{
		Description: "Pembelian buku perpustakaan",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SuggestionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Eligible)
	assert.Empty(suite.T(), response.Data.AccountCode)
}

func (suite *TestSuiteStandard) TestSuggestionFromCollaborator() {
	v1.Suggester = stubSuggester{
		suggestion: suggest.Suggestion{
			AccountCode: "5.1.02.01.01.0024",
			Standard:    "SARPRAS",
			Component:   "PENGEMBANGAN_PERPUSTAKAAN",
			UnitPrice:   decimal.NewFromInt(55000),
			Eligible:    true,
			Confidence:  0.8,
		},
	}
	defer func() { v1.Suggester = suggest.Noop{} }()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/suggestions", v1.SuggestionRequest{
		Description: "Pembelian buku perpustakaan",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SuggestionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "5.1.02.01.01.0024", response.Data.AccountCode)
	assert.Equal(suite.T(), "PENGEMBANGAN_PERPUSTAKAAN", response.Data.Component)
}

// TestSuggestionFallback verifies that an unreachable collaborator
// degrades to the account rules instead of failing the request.
func (suite *TestSuiteStandard) TestSuggestionFallback() {
	v1.Suggester = stubSuggester{err: errors.New("connection refused")}
	defer func() { v1.Suggester = suggest.Noop{} }()

	_ = suite.createTestAccountRule(suite.T(), v1.AccountRuleEditable{
		Priority:    1,
		Match:       "*honor*",
		AccountCode: "5.1.02.02.01.0026",
		Standard:    models.StandardPTK,
		Component:   models.ComponentHonor,
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/suggestions", v1.SuggestionRequest{
		Description: "Pembayaran honor guru ekstrakurikuler",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SuggestionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "5.1.02.02.01.0026", response.Data.AccountCode)
	assert.Equal(suite.T(), "PTK", response.Data.Standard)
	assert.True(suite.T(), response.Data.Eligible)

	// Without a matching rule the neutral defaults are returned
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/suggestions", v1.SuggestionRequest{
		Description: "Pembelian laptop",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.Empty(suite.T(), response.Data.AccountCode)
	assert.True(suite.T(), response.Data.Eligible)
}

func (suite *TestSuiteStandard) TestSuggestionFails() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/suggestions", `{ "description": `)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRemediation() {
	v1.Suggester = stubSuggester{
		remediation: []suggest.RemediationItem{
			{
				Indicator:     "Kemampuan literasi",
				Activity:      "Pengadaan buku bacaan bermutu untuk pojok baca",
				Standard:      "SARPRAS",
				Component:     "PENGEMBANGAN_PERPUSTAKAAN",
				EstimatedCost: decimal.NewFromInt(5000000),
			},
		},
	}
	defer func() { v1.Suggester = suggest.Noop{} }()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/suggestions/remediation", v1.RemediationRequest{
		Indicators: []suggest.Indicator{
			{Name: "Kemampuan literasi", Score: 61.4, Label: "Sedang"},
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RemediationResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if assert.Len(suite.T(), response.Data, 1) {
		assert.Equal(suite.T(), "Kemampuan literasi", response.Data[0].Indicator)
	}
}

// TestRemediationDegrades verifies that a failing collaborator results
// in an empty list, not an error.
func (suite *TestSuiteStandard) TestRemediationDegrades() {
	v1.Suggester = stubSuggester{err: errors.New("connection refused")}
	defer func() { v1.Suggester = suggest.Noop{} }()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/suggestions/remediation", v1.RemediationRequest{
		Indicators: []suggest.Indicator{
			{Name: "Kemampuan numerasi", Score: 45, Label: "Kurang"},
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RemediationResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Empty(suite.T(), response.Data)
}
