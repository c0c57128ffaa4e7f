package models

import (
	"github.com/rkas-pintar/backend/internal/types"
	"github.com/shopspring/decimal"
)

// The allocation engine computes how much of a line's annual amount is
// spendable in a given month. All functions here are pure folds over
// the line's loaded realizations; nothing is cached or persisted.

// PerMonthShare is the equal share of the annual amount for each
// planned month. There is no weighting between months.
func (l BudgetLine) PerMonthShare() decimal.Decimal {
	planned := l.PlannedMonthsOrDefault()
	return l.Amount.Div(decimal.NewFromInt(int64(len(planned))))
}

// RealizedInMonth sums the realization amounts booked in the given month.
func (l BudgetLine) RealizedInMonth(month types.Month) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range l.Realizations {
		if r.Month == month {
			sum = sum.Add(r.Amount)
		}
	}

	return sum
}

// CumulativeRealized sums the realization amounts across all months.
func (l BudgetLine) CumulativeRealized() decimal.Decimal {
	sum := decimal.Zero
	for _, r := range l.Realizations {
		sum = sum.Add(r.Amount)
	}

	return sum
}

// RemainingBalance is the annual amount minus everything realized so far.
func (l BudgetLine) RemainingBalance() decimal.Decimal {
	return l.Amount.Sub(l.CumulativeRealized())
}

// MonthlyAllocation computes the amount of the line that is spendable
// in the given month.
//
// Each planned month carries an equal share of the annual amount.
// Shares of planned months that have passed without being fully spent
// roll over ("luncuran") into later months. Realizations already booked
// in the queried month are added back, so that editing an existing
// entry does not present a remaining allocation of zero. The result is
// rounded to whole currency units, matching the figures shown to users.
func (l BudgetLine) MonthlyAllocation(month types.Month) decimal.Decimal {
	planned := l.PlannedMonthsOrDefault()

	// Nothing is allocated before the first planned month.
	passed := planned.PassedBy(month)
	if passed == 0 {
		return decimal.Zero
	}

	// What should have been realized by this point if spending tracked
	// the plan exactly.
	cumulativeTarget := l.PerMonthShare().Mul(decimal.NewFromInt(int64(passed)))

	// Spending ahead of plan must not make the allocation negative.
	availableBase := cumulativeTarget.Sub(l.CumulativeRealized())
	if availableBase.IsNegative() {
		availableBase = decimal.Zero
	}

	return availableBase.Add(l.RealizedInMonth(month)).Round(0)
}
