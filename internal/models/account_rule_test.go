package models_test

import (
	"testing"

	"github.com/rkas-pintar/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAccountRuleMatching() {
	_ = suite.createTestAccountRule(models.AccountRule{
		Priority:    1,
		Match:       "*honor*",
		AccountCode: "5.1.02.02.01.0003",
		Component:   models.ComponentHonor,
	})
	_ = suite.createTestAccountRule(models.AccountRule{
		Priority:    2,
		Match:       "*buku*",
		AccountCode: "5.1.02.01.01.0024",
		Component:   models.ComponentPerpustakaan,
	})

	rules, err := models.AccountRulesByPriority(models.DB)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), rules, 2)

	rule, ok := models.MatchAccountRule(rules, "Pembayaran honor guru ekstrakurikuler")
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "5.1.02.02.01.0003", rule.AccountCode)

	rule, ok = models.MatchAccountRule(rules, "Pembelian BUKU cerita")
	assert.True(suite.T(), ok, "matching is case insensitive")
	assert.Equal(suite.T(), models.ComponentPerpustakaan, rule.Component)

	_, ok = models.MatchAccountRule(rules, "Perjalanan dinas")
	assert.False(suite.T(), ok)
}

func (suite *TestSuiteStandard) TestAccountRuleValidation() {
	tests := []struct {
		name string
		rule models.AccountRule
		err  error
	}{
		{"empty match", models.AccountRule{Match: "   "}, models.ErrRuleMatchEmpty},
		{"malformed account code", models.AccountRule{Match: "*", AccountCode: "abc"}, models.ErrAccountCodeInvalid},
		{"invalid standard", models.AccountRule{Match: "*", Standard: "STANDAR_X"}, models.ErrStandardInvalid},
		{"invalid component", models.AccountRule{Match: "*", Component: "APAPUN"}, models.ErrComponentInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.rule).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
