package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"bankist/internal/models"
	"bankist/internal/repositories"
)

// DemoSeeder generates additional fake accounts for manual testing. It is
// only wired up in the development environment.
type DemoSeeder struct {
	accountRepo repositories.AccountRepositoryInterface
	pinService  PINServiceInterface
	logger      *slog.Logger
}

func NewDemoSeeder(
	accountRepo repositories.AccountRepositoryInterface,
	pinService PINServiceInterface,
	logger *slog.Logger,
) *DemoSeeder {
	return &DemoSeeder{
		accountRepo: accountRepo,
		pinService:  pinService,
		logger:      logger,
	}
}

// GenerateAccounts creates count fake accounts, each with a random PIN and a
// plausible movement history. Returns the generated credentials so a manual
// tester can log in as them.
func (s *DemoSeeder) GenerateAccounts(count int) ([]GeneratedAccount, error) {
	if count <= 0 || count > 50 {
		return nil, fmt.Errorf("account count must be between 1 and 50, got %d", count)
	}

	position, err := s.accountRepo.NextPosition()
	if err != nil {
		return nil, fmt.Errorf("failed to determine directory position: %w", err)
	}

	generated := make([]GeneratedAccount, 0, count)
	for i := 0; i < count; i++ {
		owner := gofakeit.Name()
		pin := fmt.Sprintf("%04d", gofakeit.Number(0, 9999))

		pinHash, err := s.pinService.HashPIN(pin)
		if err != nil {
			return nil, fmt.Errorf("failed to hash generated PIN: %w", err)
		}

		account := &models.Account{
			Owner:        owner,
			PINHash:      pinHash,
			InterestRate: decimal.NewFromFloat(gofakeit.Float64Range(0.5, 2.5)).Round(2),
			Currency:     gofakeit.RandomString([]string{"EUR", "USD", "GBP"}),
			Locale:       gofakeit.RandomString([]string{"en-US", "en-GB", "pt-PT", "de-DE"}),
			Position:     position + i,
			Movements:    s.generateMovements(),
		}

		if err := s.accountRepo.Create(account); err != nil {
			return nil, fmt.Errorf("failed to create generated account: %w", err)
		}

		generated = append(generated, GeneratedAccount{
			Owner:    account.Owner,
			Username: account.Username,
			PIN:      pin,
		})
	}

	s.logger.Info("generated demo accounts", "count", len(generated))
	return generated, nil
}

// generateMovements builds between 4 and 10 movements, oldest first, with the
// first one always a deposit so the account starts from a credit.
func (s *DemoSeeder) generateMovements() []models.Movement {
	n := gofakeit.Number(4, 10)
	start := time.Now().AddDate(0, -6, 0)

	movements := make([]models.Movement, 0, n)
	for i := 0; i < n; i++ {
		var amount float64
		if i == 0 || gofakeit.Bool() {
			amount = gofakeit.Float64Range(50, 5000)
		} else {
			amount = -gofakeit.Float64Range(10, 1500)
		}

		movements = append(movements, models.Movement{
			Amount:     decimal.NewFromFloat(amount).Round(2),
			OccurredAt: start.Add(time.Duration(i) * 14 * 24 * time.Hour),
			Position:   i,
		})
	}

	return movements
}

// GeneratedAccount reports the login credentials of a fake account.
type GeneratedAccount struct {
	Owner    string `json:"owner"`
	Username string `json:"username"`
	PIN      string `json:"pin"`
}
