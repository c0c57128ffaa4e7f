package models_test

import (
	"testing"

	"github.com/rkas-pintar/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestBankStatementUniquePerMonth() {
	_ = suite.createTestBankStatement(models.BankStatement{
		FiscalYear:     2024,
		Month:          1,
		ClosingBalance: decimal.NewFromInt(1500000),
	})

	statement := models.BankStatement{
		FiscalYear:     2024,
		Month:          1,
		ClosingBalance: decimal.NewFromInt(999),
	}
	err := models.DB.Create(&statement).Error
	assert.ErrorIs(suite.T(), err, models.ErrStatementNotUnique)

	// The same month in another fiscal year is fine.
	statement = models.BankStatement{
		FiscalYear:     2025,
		Month:          1,
		ClosingBalance: decimal.NewFromInt(999),
	}
	assert.Nil(suite.T(), models.DB.Create(&statement).Error)
}

func (suite *TestSuiteStandard) TestBankStatementValidation() {
	tests := []struct {
		name      string
		statement models.BankStatement
		err       error
	}{
		{"invalid month", models.BankStatement{FiscalYear: 2024, Month: 0}, models.ErrStatementMonthInvalid},
		{"missing fiscal year", models.BankStatement{Month: 4}, models.ErrFiscalYearMissing},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.statement).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
