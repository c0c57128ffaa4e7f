package models

import (
	"encoding/json"
	"strings"

	"github.com/rkas-pintar/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BankStatement is the externally supplied closing balance of the
// school's bank account for one month. It is the reference value the
// cash reconciliation compares the system balance against.
type BankStatement struct {
	DefaultModel
	FiscalYear     int             `gorm:"uniqueIndex:statement_year_month"`
	Month          types.Month     `gorm:"uniqueIndex:statement_year_month"`
	ClosingBalance decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Note           string
}

func (s *BankStatement) BeforeSave(_ *gorm.DB) error {
	s.Note = strings.TrimSpace(s.Note)

	if !s.Month.Valid() {
		return ErrStatementMonthInvalid
	}

	if s.FiscalYear == 0 {
		return ErrFiscalYearMissing
	}

	return nil
}

// Returns all bank statements on this instance for export
func (BankStatement) Export() (json.RawMessage, error) {
	var statements []BankStatement
	err := DB.Unscoped().Where(&BankStatement{}).Find(&statements).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&statements)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
