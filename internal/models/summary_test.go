package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func movementsFromStrings(amounts ...string) []Movement {
	movements := make([]Movement, 0, len(amounts))
	for i, raw := range amounts {
		movements = append(movements, Movement{
			Amount:   decimal.RequireFromString(raw),
			Position: i,
		})
	}
	return movements
}

func TestComputeBalance(t *testing.T) {
	movements := movementsFromStrings("200", "455.23", "-306.5", "25000", "-642.21", "-133.9", "79.97", "1300")
	assert.True(t, ComputeBalance(movements).Equal(decimal.RequireFromString("25952.59")))

	assert.True(t, ComputeBalance(nil).Equal(decimal.Zero))
}

func TestComputeSummary(t *testing.T) {
	movements := movementsFromStrings("200", "455.23", "-306.5", "25000", "-642.21", "-133.9", "79.97", "1300")
	rate := decimal.RequireFromString("1.2")

	summary := ComputeSummary(movements, rate)

	assert.True(t, summary.Income.Equal(decimal.RequireFromString("27035.2")), "income was %s", summary.Income)
	assert.True(t, summary.Expense.Equal(decimal.RequireFromString("1082.61")), "expense was %s", summary.Expense)

	// deposits of 200 (2.40), 455.23 (5.46276), 25000 (300) and 1300 (15.60)
	// accrue interest; 79.97 accrues 0.95964 which is under one unit and is
	// dropped entirely
	expectedInterest := decimal.RequireFromString("323.46276")
	assert.True(t, summary.Interest.Equal(expectedInterest), "interest was %s", summary.Interest)
}

func TestComputeSummaryInterestThreshold(t *testing.T) {
	rate := decimal.RequireFromString("1.0")

	// accrual of exactly one unit counts
	atThreshold := ComputeSummary(movementsFromStrings("100"), rate)
	assert.True(t, atThreshold.Interest.Equal(decimal.RequireFromString("1")))

	// accrual just under one unit is dropped, not rounded
	belowThreshold := ComputeSummary(movementsFromStrings("99.99"), rate)
	assert.True(t, belowThreshold.Interest.Equal(decimal.Zero))
}

func TestComputeSummaryIgnoresWithdrawalsForInterest(t *testing.T) {
	summary := ComputeSummary(movementsFromStrings("-5000"), decimal.RequireFromString("10"))
	assert.True(t, summary.Interest.Equal(decimal.Zero))
	assert.True(t, summary.Income.Equal(decimal.Zero))
	assert.True(t, summary.Expense.Equal(decimal.RequireFromString("5000")))
}

func TestSortedByAmount(t *testing.T) {
	movements := movementsFromStrings("200", "-306.5", "455.23", "-133.9")

	sorted := SortedByAmount(movements)

	assert.Equal(t, "-306.5", sorted[0].Amount.String())
	assert.Equal(t, "-133.9", sorted[1].Amount.String())
	assert.Equal(t, "200", sorted[2].Amount.String())
	assert.Equal(t, "455.23", sorted[3].Amount.String())

	// the input order must survive
	assert.Equal(t, "200", movements[0].Amount.String())
	assert.Equal(t, "-306.5", movements[1].Amount.String())
	assert.Equal(t, "455.23", movements[2].Amount.String())
	assert.Equal(t, "-133.9", movements[3].Amount.String())
}

func TestSortedByAmountStable(t *testing.T) {
	movements := movementsFromStrings("100", "100", "50")
	movements[0].Position = 0
	movements[1].Position = 1

	sorted := SortedByAmount(movements)

	assert.Equal(t, "50", sorted[0].Amount.String())
	assert.Equal(t, 0, sorted[1].Position)
	assert.Equal(t, 1, sorted[2].Position)
}
