package repositories

import (
	"time"

	"bankist/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRepositoryInterface defines the contract for the account directory.
// Accounts load with their movements in insertion order; lookups by username
// resolve collisions by directory position, first match wins.
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByUsername(username string) (*models.Account, error)
	List() ([]models.Account, error)
	Count() (int64, error)
	Delete(id uuid.UUID) error
	NextPosition() (int, error)
	AppendMovement(accountID uuid.UUID, amount decimal.Decimal, occurredAt time.Time) error
	AppendTransferPair(fromID, toID uuid.UUID, amount decimal.Decimal, occurredAt time.Time) error
	MovementsByAccountID(accountID uuid.UUID) ([]models.Movement, error)
}
