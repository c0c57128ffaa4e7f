package v1_test

import (
	"net/http"

	v1 "github.com/rkas-pintar/backend/internal/controllers/v1"
	"github.com/rkas-pintar/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSchoolProfileGetEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/school-profile", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestSchoolProfileUpsert verifies that PUT creates the profile on first
// use and replaces it afterwards, keeping the resource ID stable.
func (suite *TestSuiteStandard) TestSchoolProfileUpsert() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/school-profile", v1.SchoolProfileEditable{
		Name:       "SDN 1 Sukamaju",
		NPSN:       "20212345",
		FiscalYear: 2024,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var created v1.SchoolProfileResponse
	test.DecodeResponse(suite.T(), &r, &created)
	assert.Equal(suite.T(), "SDN 1 Sukamaju", created.Data.Name)

	r = test.Request(suite.T(), http.MethodPut, "http://example.com/v1/school-profile", v1.SchoolProfileEditable{
		Name:          "SDN 1 Sukamaju",
		NPSN:          "20212345",
		TreasurerName: "Budi Santoso, S.Pd.",
		FiscalYear:    2025,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.SchoolProfileResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), created.Data.ID, updated.Data.ID)
	assert.Equal(suite.T(), "Budi Santoso, S.Pd.", updated.Data.TreasurerName)
	assert.Equal(suite.T(), 2025, updated.Data.FiscalYear)

	// GET returns the stored profile
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/school-profile", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var fetched v1.SchoolProfileResponse
	test.DecodeResponse(suite.T(), &r, &fetched)
	assert.Equal(suite.T(), updated.Data.ID, fetched.Data.ID)
}

func (suite *TestSuiteStandard) TestSchoolProfileUpdateFails() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/school-profile", `{ "name": `)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSchoolProfileOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/school-profile", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PUT", r.Header().Get("allow"))
}
