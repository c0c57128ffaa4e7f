// Package suggest consults an LLM for advisory categorization of budget
// entries. Every field it produces is a default the operator can
// override, and callers must work identically when the collaborator is
// unreachable.
package suggest

import (
	"context"

	"github.com/rkas-pintar/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Suggestion is the advisory categorization for a free-text purchase
// description.
type Suggestion struct {
	AccountCode   string          `json:"accountCode" example:"5.1.02.01.01.0024"`
	Standard      string          `json:"standard" example:"SARPRAS"`
	Component     string          `json:"component" example:"PENGEMBANGAN_PERPUSTAKAAN"`
	Quantity      decimal.Decimal `json:"quantity" example:"20"`
	Unit          string          `json:"unit" example:"rim"`
	UnitPrice     decimal.Decimal `json:"unitPrice" example:"55000"`
	PlannedMonths types.MonthList `json:"plannedMonths" example:"1,7"`
	Eligible      bool            `json:"eligible" example:"true"` // Whether the purchase fits the disbursement rules
	Reason        string          `json:"reason" example:"Pembelian buku termasuk komponen pengembangan perpustakaan"`
	Confidence    float64         `json:"confidence" example:"0.8"`
}

// Indicator is one score from the national education report card
// ("Rapor Pendidikan").
type Indicator struct {
	Name  string  `json:"name" example:"Kemampuan literasi"`
	Score float64 `json:"score" example:"61.4"`
	Label string  `json:"label" example:"Sedang"`
}

// RemediationItem is one suggested activity addressing a weak report
// card indicator.
type RemediationItem struct {
	Indicator     string          `json:"indicator" example:"Kemampuan literasi"`
	Activity      string          `json:"activity" example:"Pengadaan buku bacaan bermutu untuk pojok baca"`
	Standard      string          `json:"standard" example:"SARPRAS"`
	Component     string          `json:"component" example:"PENGEMBANGAN_PERPUSTAKAAN"`
	EstimatedCost decimal.Decimal `json:"estimatedCost" example:"5000000"`
}

// Suggester is the pluggable collaborator interface. The ledger and
// allocation code never depend on it; only the suggestion endpoints do.
type Suggester interface {
	Suggest(ctx context.Context, description string) (Suggestion, error)
	Remediate(ctx context.Context, indicators []Indicator) ([]RemediationItem, error)
}

// Noop is the default collaborator when no endpoint is configured. It
// returns the neutral defaults: eligible, no suggestions.
type Noop struct{}

func (Noop) Suggest(_ context.Context, _ string) (Suggestion, error) {
	return Suggestion{Eligible: true}, nil
}

func (Noop) Remediate(_ context.Context, _ []Indicator) ([]RemediationItem, error) {
	return []RemediationItem{}, nil
}
