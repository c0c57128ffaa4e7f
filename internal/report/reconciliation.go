package report

import (
	"github.com/rkas-pintar/backend/internal/models"
	"github.com/rkas-pintar/backend/internal/types"
	"github.com/shopspring/decimal"
)

// BalancedTolerance is the band within which a difference between the
// system balance and the bank balance still counts as balanced. It
// absorbs rounding on the bank side, so the comparison is not exact
// equality.
var BalancedTolerance = decimal.NewFromInt(100)

// Reconciliation compares the cash balance derived from the books with
// the closing balance of the bank statement for a month.
type Reconciliation struct {
	Month         types.Month     `json:"month" example:"3"`                // The month the reconciliation is for
	SystemBalance decimal.Decimal `json:"systemBalance" example:"12500000"` // Income received minus realizations booked up to the month
	BankBalance   decimal.Decimal `json:"bankBalance" example:"12500050"`   // Closing balance of the bank statement
	Difference    decimal.Decimal `json:"difference" example:"-50"`         // System balance minus bank balance
	Balanced      bool            `json:"balanced" example:"true"`          // Whether the difference is within the tolerance
	HasStatement  bool            `json:"hasStatement" example:"true"`      // Whether a bank statement exists for the month
}

// SystemBalance computes the cash position from the books: all income
// received up to and including the month, minus all realizations booked
// up to and including the month.
func SystemBalance(lines []models.BudgetLine, month types.Month) decimal.Decimal {
	balance := decimal.Zero

	for _, line := range lines {
		switch line.Type {
		case models.LineTypeIncome:
			if line.IncomeMonth() <= month {
				balance = balance.Add(line.Amount)
			}
		case models.LineTypeExpense:
			for _, r := range line.Realizations {
				if r.Month <= month {
					balance = balance.Sub(r.Amount)
				}
			}
		}
	}

	return balance
}

// Reconcile builds the reconciliation of a month against the bank
// statements. Without a statement for the month the difference equals
// the system balance and the result is reported as not balanced.
func Reconcile(lines []models.BudgetLine, statements []models.BankStatement, year int, month types.Month) Reconciliation {
	reconciliation := Reconciliation{
		Month:         month,
		SystemBalance: SystemBalance(lines, month),
		BankBalance:   decimal.Zero,
	}

	for _, statement := range statements {
		if statement.FiscalYear == year && statement.Month == month {
			reconciliation.BankBalance = statement.ClosingBalance
			reconciliation.HasStatement = true
			break
		}
	}

	reconciliation.Difference = reconciliation.SystemBalance.Sub(reconciliation.BankBalance)
	reconciliation.Balanced = reconciliation.HasStatement &&
		reconciliation.Difference.Abs().LessThan(BalancedTolerance)

	return reconciliation
}
