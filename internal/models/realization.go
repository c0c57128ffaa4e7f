package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rkas-pintar/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Realization is a dated record of money actually spent against a
// budget line (an SPJ entry).
//
// Month is the month the spend is booked in for allocation purposes.
// TargetMonth is the month the expenditure is conceptually for; it lags
// Month when an overdue plan is caught up later in the year.
type Realization struct {
	DefaultModel
	BudgetLine   BudgetLine `json:"-"`
	BudgetLineID uuid.UUID  `gorm:"index"`
	Position     int        // Insertion order within the budget line
	Month        types.Month
	TargetMonth  types.Month
	Amount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Quantity     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date         time.Time       // The receipt/voucher date
	Notes        string
	EvidenceFile string // Filename reference of the uploaded evidence, not the file itself
}

func (r *Realization) BeforeSave(_ *gorm.DB) error {
	r.Notes = strings.TrimSpace(r.Notes)
	r.EvidenceFile = strings.TrimSpace(r.EvidenceFile)

	if !r.Month.Valid() {
		return ErrRealizationMonthInvalid
	}

	if r.TargetMonth == 0 {
		r.TargetMonth = r.Month
	}

	if !r.TargetMonth.Valid() {
		return ErrRealizationMonthInvalid
	}

	if r.Date.IsZero() {
		r.Date = time.Now().In(time.UTC)
	} else {
		r.Date = r.Date.In(time.UTC)
	}

	return nil
}

func (r *Realization) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(r.Amount) {
		return ErrRealizationNotPositive
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (r *Realization) AfterFind(_ *gorm.DB) (err error) {
	r.Date = r.Date.In(time.UTC)
	return nil
}

// Returns all realizations on this instance for export
func (Realization) Export() (json.RawMessage, error) {
	var realizations []Realization
	err := DB.Unscoped().Where(&Realization{}).Find(&realizations).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&realizations)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
