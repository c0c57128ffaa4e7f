package report

import (
	"github.com/rkas-pintar/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Dashboard holds the headline figures shown on the landing page.
type Dashboard struct {
	TotalIncome     decimal.Decimal `json:"totalIncome" example:"90000000"`     // Sum of all income line amounts
	PlannedExpense  decimal.Decimal `json:"plannedExpense" example:"88000000"`  // Sum of all expense line amounts
	RealizedExpense decimal.Decimal `json:"realizedExpense" example:"31000000"` // Sum of all realizations across all lines and months
	CashBalance     decimal.Decimal `json:"cashBalance" example:"59000000"`     // Income minus realized expense
	RemainingBudget decimal.Decimal `json:"remainingBudget" example:"57000000"` // Planned expense minus realized expense
}

// Totals folds the budget lines into the dashboard figures.
func Totals(lines []models.BudgetLine) Dashboard {
	dashboard := Dashboard{
		TotalIncome:     decimal.Zero,
		PlannedExpense:  decimal.Zero,
		RealizedExpense: decimal.Zero,
	}

	for _, line := range lines {
		switch line.Type {
		case models.LineTypeIncome:
			dashboard.TotalIncome = dashboard.TotalIncome.Add(line.Amount)
		case models.LineTypeExpense:
			dashboard.PlannedExpense = dashboard.PlannedExpense.Add(line.Amount)
			dashboard.RealizedExpense = dashboard.RealizedExpense.Add(line.CumulativeRealized())
		}
	}

	dashboard.CashBalance = dashboard.TotalIncome.Sub(dashboard.RealizedExpense)
	dashboard.RemainingBudget = dashboard.PlannedExpense.Sub(dashboard.RealizedExpense)

	return dashboard
}
