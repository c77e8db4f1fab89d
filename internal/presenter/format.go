package presenter

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatAmount renders a money value with its currency symbol, using the
// account's locale for digit grouping. Unknown locales or currency codes fall
// back to a plain "1234.56 EUR" form rather than failing.
func FormatAmount(amount decimal.Decimal, currencyCode, locale string) string {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return fmt.Sprintf("%s %s", amount.StringFixed(2), currencyCode)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	value, _ := amount.Round(2).Float64()
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(value)))
}

// WelcomeMessage builds the greeting shown after login.
func WelcomeMessage(firstName string) string {
	return fmt.Sprintf("Welcome back, %s!", firstName)
}

// FormatCountdown renders remaining seconds as mm:ss, e.g. 90 -> "01:30".
func FormatCountdown(remaining int) string {
	return fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)
}

// FormatMovementDate renders a movement date relative to now: today and
// yesterday by name, under a week as a day count, anything older as a plain
// date.
func FormatMovementDate(t, now time.Time) string {
	daysPassed := int(calendarDays(t, now))

	switch {
	case daysPassed == 0:
		return "Today"
	case daysPassed == 1:
		return "Yesterday"
	case daysPassed < 7:
		return fmt.Sprintf("%d days ago", daysPassed)
	default:
		return t.Format("02/01/2006")
	}
}

// FormatDate renders a full timestamp for the "as of" line.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006, 15:04")
}

func calendarDays(from, to time.Time) float64 {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return toDay.Sub(fromDay).Hours() / 24
}
