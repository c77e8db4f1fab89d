package database

import (
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bankist/internal/models"
)

type seedAccount struct {
	Owner        string
	PIN          string
	InterestRate string
	Currency     string
	Locale       string
	Movements    []string
	Dates        []string
}

// canonical demo accounts, movements oldest first
var seedAccounts = []seedAccount{
	{
		Owner:        "Jonas Schmedtmann",
		PIN:          "1111",
		InterestRate: "1.2",
		Currency:     "EUR",
		Locale:       "pt-PT",
		Movements:    []string{"200", "455.23", "-306.5", "25000", "-642.21", "-133.9", "79.97", "1300"},
		Dates: []string{
			"2019-11-18T21:31:17.178Z",
			"2019-12-23T07:42:02.383Z",
			"2020-01-28T09:15:04.904Z",
			"2020-04-01T10:17:24.185Z",
			"2020-05-08T14:11:59.604Z",
			"2020-05-27T17:01:17.194Z",
			"2020-07-11T23:36:17.929Z",
			"2020-07-12T10:51:36.790Z",
		},
	},
	{
		Owner:        "Jessica Davis",
		PIN:          "2222",
		InterestRate: "1.5",
		Currency:     "USD",
		Locale:       "en-US",
		Movements:    []string{"5000", "3400", "-150", "-790", "-3210", "-1000", "8500", "-30"},
		Dates: []string{
			"2019-11-01T13:15:33.035Z",
			"2019-11-30T09:48:16.867Z",
			"2019-12-25T06:04:23.907Z",
			"2020-01-25T14:18:46.235Z",
			"2020-02-05T16:33:06.386Z",
			"2020-04-10T14:43:26.374Z",
			"2020-06-25T18:49:59.371Z",
			"2020-07-26T12:01:20.894Z",
		},
	},
}

// Seed loads the demo accounts into an empty directory. It is a no-op when
// accounts already exist so restarts against postgres do not duplicate data.
func Seed(db *gorm.DB, bcryptCost int) error {
	var count int64
	if err := db.Model(&models.Account{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count accounts: %w", err)
	}
	if count > 0 {
		log.Printf("Account directory already has %d accounts, skipping seed", count)
		return nil
	}

	for i, sa := range seedAccounts {
		account, err := buildSeedAccount(sa, i, bcryptCost)
		if err != nil {
			return err
		}
		if err := db.Create(account).Error; err != nil {
			return fmt.Errorf("failed to seed account %q: %w", sa.Owner, err)
		}
	}

	log.Printf("Seeded %d demo accounts", len(seedAccounts))
	return nil
}

func buildSeedAccount(sa seedAccount, position, bcryptCost int) (*models.Account, error) {
	if len(sa.Movements) != len(sa.Dates) {
		return nil, fmt.Errorf("seed account %q has %d movements but %d dates", sa.Owner, len(sa.Movements), len(sa.Dates))
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(sa.PIN), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash PIN for %q: %w", sa.Owner, err)
	}

	rate, err := decimal.NewFromString(sa.InterestRate)
	if err != nil {
		return nil, fmt.Errorf("bad interest rate for %q: %w", sa.Owner, err)
	}

	account := &models.Account{
		Owner:        sa.Owner,
		Username:     models.DeriveUsername(sa.Owner),
		PINHash:      string(pinHash),
		InterestRate: rate,
		Currency:     sa.Currency,
		Locale:       sa.Locale,
		Position:     position,
	}

	for j, raw := range sa.Movements {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("bad movement amount %q for %q: %w", raw, sa.Owner, err)
		}
		occurredAt, err := time.Parse(time.RFC3339, sa.Dates[j])
		if err != nil {
			return nil, fmt.Errorf("bad movement date %q for %q: %w", sa.Dates[j], sa.Owner, err)
		}
		account.Movements = append(account.Movements, models.Movement{
			Amount:     amount,
			OccurredAt: occurredAt,
			Position:   j,
		})
	}

	return account, nil
}
