// Package report implements the read-side views over budget lines:
// the monthly recap, the cash reconciliation, the dashboard totals and
// the snapshots consumed by the document generator. Every view is a
// pure fold over the collections passed in and is recomputed from
// scratch on each request.
package report

import (
	"github.com/rkas-pintar/backend/internal/models"
	"github.com/rkas-pintar/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// RecapGroup is one account-code group of the monthly recap (the BKU
// recapitulation printed for the SPJ).
type RecapGroup struct {
	AccountCode string          `json:"accountCode" example:"5.1.02.01.01.0012"` // The account code of the group
	Budget      decimal.Decimal `json:"budget" example:"1200000"`                // Sum of the annual amounts of the group's lines
	Past        decimal.Decimal `json:"past" example:"400000"`                   // Realized in months strictly before the chosen one
	Current     decimal.Decimal `json:"current" example:"150000"`                // Realized in the chosen month
	TotalToDate decimal.Decimal `json:"totalToDate" example:"550000"`            // Past plus current
	Balance     decimal.Decimal `json:"balance" example:"650000"`                // Budget minus total to date
}

// MonthlyRecap groups the expense lines by account code and computes
// the realized amounts up to and within the chosen month.
//
// The recap reports what happened in the chosen month, so groups
// without any realization in that month are left out even when they
// have a budget or past realizations.
func MonthlyRecap(lines []models.BudgetLine, month types.Month) []RecapGroup {
	groups := make(map[string]*RecapGroup)

	for _, line := range lines {
		if line.Type != models.LineTypeExpense {
			continue
		}

		group, ok := groups[line.AccountCode]
		if !ok {
			group = &RecapGroup{
				AccountCode: line.AccountCode,
				Budget:      decimal.Zero,
				Past:        decimal.Zero,
				Current:     decimal.Zero,
			}
			groups[line.AccountCode] = group
		}

		group.Budget = group.Budget.Add(line.Amount)

		for _, r := range line.Realizations {
			if r.Month.Before(month) {
				group.Past = group.Past.Add(r.Amount)
			} else if r.Month == month {
				group.Current = group.Current.Add(r.Amount)
			}
		}
	}

	recap := make([]RecapGroup, 0, len(groups))
	for _, group := range groups {
		if !group.Current.IsPositive() {
			continue
		}

		group.TotalToDate = group.Past.Add(group.Current)
		group.Balance = group.Budget.Sub(group.TotalToDate)
		recap = append(recap, *group)
	}

	slices.SortFunc(recap, func(a, b RecapGroup) int {
		switch {
		case a.AccountCode < b.AccountCode:
			return -1
		case a.AccountCode > b.AccountCode:
			return 1
		}
		return 0
	})

	return recap
}
