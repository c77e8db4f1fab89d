package presenter

import (
	"time"

	"bankist/internal/dto"
	"bankist/internal/models"
)

// BuildMovementViews renders the movement list in display order: most recent
// first when unsorted, ascending by amount when sorted. Indexes count from 1
// in iteration order, so the largest index sits at the top of an unsorted
// list.
func BuildMovementViews(account *models.Account, sorted bool, now time.Time) []dto.MovementView {
	movements := account.Movements
	if sorted {
		movements = models.SortedByAmount(movements)
	}

	views := make([]dto.MovementView, 0, len(movements))
	for i, mov := range movements {
		views = append(views, dto.MovementView{
			Index:  i + 1,
			Type:   mov.Kind(),
			Date:   FormatMovementDate(mov.OccurredAt, now),
			Amount: FormatAmount(mov.Amount, account.Currency, account.Locale),
		})
	}

	// newest rows on top; the sorted view keeps ascending amount order
	if !sorted {
		for i, j := 0, len(views)-1; i < j; i, j = i+1, j-1 {
			views[i], views[j] = views[j], views[i]
		}
	}

	return views
}

// BuildSummaryView computes and formats the derived totals.
func BuildSummaryView(account *models.Account) dto.SummaryView {
	summary := models.ComputeSummary(account.Movements, account.InterestRate)

	return dto.SummaryView{
		Balance:  FormatAmount(summary.Balance, account.Currency, account.Locale),
		Income:   FormatAmount(summary.Income, account.Currency, account.Locale),
		Expense:  FormatAmount(summary.Expense, account.Currency, account.Locale),
		Interest: FormatAmount(summary.Interest, account.Currency, account.Locale),
	}
}

// BuildAccountView assembles the full authenticated view.
func BuildAccountView(account *models.Account, sorted bool, now time.Time) *dto.AccountView {
	return &dto.AccountView{
		Owner:     account.Owner,
		Username:  account.Username,
		Currency:  account.Currency,
		Locale:    account.Locale,
		Sorted:    sorted,
		Movements: BuildMovementViews(account, sorted, now),
		Summary:   BuildSummaryView(account),
		AsOf:      FormatDate(now),
	}
}

// BuildCountdownView renders the inactivity clock.
func BuildCountdownView(remaining int) *dto.CountdownView {
	return &dto.CountdownView{
		Display:   FormatCountdown(remaining),
		Remaining: remaining,
	}
}
