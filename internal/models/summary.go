package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MinInterestAccrual is the minimum single interest contribution that counts
// toward the interest total. Contributions below one currency unit are
// dropped entirely, not rounded.
var MinInterestAccrual = decimal.NewFromInt(1)

// AccountSummary holds the derived figures shown with an account: all four
// are pure functions of the movements and are recomputed for every render.
type AccountSummary struct {
	Balance  decimal.Decimal `json:"balance"`
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
	Interest decimal.Decimal `json:"interest"`
}

// ComputeBalance sums all movements.
func ComputeBalance(movements []Movement) decimal.Decimal {
	balance := decimal.Zero
	for _, mov := range movements {
		balance = balance.Add(mov.Amount)
	}
	return balance
}

// ComputeSummary derives balance, income, expense and interest from the
// movements. Income sums the deposits, expense is the absolute sum of the
// withdrawals, and interest accrues per deposit at the account's rate,
// skipping any single contribution under MinInterestAccrual.
func ComputeSummary(movements []Movement, interestRate decimal.Decimal) AccountSummary {
	summary := AccountSummary{
		Balance:  decimal.Zero,
		Income:   decimal.Zero,
		Expense:  decimal.Zero,
		Interest: decimal.Zero,
	}

	hundred := decimal.NewFromInt(100)

	for _, mov := range movements {
		summary.Balance = summary.Balance.Add(mov.Amount)

		if mov.Amount.GreaterThan(decimal.Zero) {
			summary.Income = summary.Income.Add(mov.Amount)

			accrual := mov.Amount.Mul(interestRate).Div(hundred)
			if accrual.GreaterThanOrEqual(MinInterestAccrual) {
				summary.Interest = summary.Interest.Add(accrual)
			}
		} else if mov.Amount.LessThan(decimal.Zero) {
			summary.Expense = summary.Expense.Add(mov.Amount)
		}
	}

	summary.Expense = summary.Expense.Abs()

	return summary
}

// SortedByAmount returns a copy of the movements in ascending amount order,
// stable with respect to ties. The input slice is never reordered.
func SortedByAmount(movements []Movement) []Movement {
	sorted := make([]Movement, len(movements))
	copy(sorted, movements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amount.LessThan(sorted[j].Amount)
	})
	return sorted
}
