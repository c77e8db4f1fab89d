package repositories

import (
	"errors"
	"fmt"
	"time"

	"bankist/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound = errors.New("account not found")
)

// accountRepository implements AccountRepositoryInterface on gorm
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{db: db}
}

func preloadMovements(db *gorm.DB) *gorm.DB {
	return db.Order("movements.position ASC")
}

// Create creates a new account with any movements it carries
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account with its movements in insertion order
func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.Preload("Movements", preloadMovements).
		Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetByUsername retrieves the first account whose derived username matches
// exactly. Duplicate usernames shadow later accounts, matching the seed
// order of the directory.
func (r *accountRepository) GetByUsername(username string) (*models.Account, error) {
	var account models.Account
	if err := r.db.Preload("Movements", preloadMovements).
		Where("username = ?", username).
		Order("position ASC").First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account by username: %w", err)
	}
	return &account, nil
}

// List retrieves the whole directory in position order
func (r *accountRepository) List() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Preload("Movements", preloadMovements).
		Order("position ASC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// Count returns the number of accounts in the directory
func (r *accountRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Account{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return total, nil
}

// Delete removes an account and its movements permanently. Closing an
// account is irreversible; there is no soft delete.
func (r *accountRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&models.Movement{}).Error; err != nil {
			return fmt.Errorf("failed to delete movements: %w", err)
		}

		result := tx.Where("id = ?", id).Delete(&models.Account{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete account: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrAccountNotFound
		}
		return nil
	})
}

// NextPosition returns the next free directory position
func (r *accountRepository) NextPosition() (int, error) {
	var max *int
	if err := r.db.Model(&models.Account{}).
		Select("MAX(position)").Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("failed to compute next position: %w", err)
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}

// AppendMovement appends a single signed movement to an account
func (r *accountRepository) AppendMovement(accountID uuid.UUID, amount decimal.Decimal, occurredAt time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return appendMovementTx(tx, accountID, amount, occurredAt)
	})
}

// AppendTransferPair atomically appends the debit to the sender and the
// credit to the recipient with one shared timestamp so the two sides of a
// transfer record the same instant.
func (r *accountRepository) AppendTransferPair(fromID, toID uuid.UUID, amount decimal.Decimal, occurredAt time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := appendMovementTx(tx, fromID, amount.Neg(), occurredAt); err != nil {
			return err
		}
		return appendMovementTx(tx, toID, amount, occurredAt)
	})
}

// MovementsByAccountID returns an account's movements in insertion order
func (r *accountRepository) MovementsByAccountID(accountID uuid.UUID) ([]models.Movement, error) {
	var movements []models.Movement
	if err := r.db.Where("account_id = ?", accountID).
		Order("position ASC").Find(&movements).Error; err != nil {
		return nil, fmt.Errorf("failed to get movements: %w", err)
	}
	return movements, nil
}

func appendMovementTx(tx *gorm.DB, accountID uuid.UUID, amount decimal.Decimal, occurredAt time.Time) error {
	var exists int64
	if err := tx.Model(&models.Account{}).Where("id = ?", accountID).Count(&exists).Error; err != nil {
		return fmt.Errorf("failed to check account: %w", err)
	}
	if exists == 0 {
		return ErrAccountNotFound
	}

	var max *int
	if err := tx.Model(&models.Movement{}).Where("account_id = ?", accountID).
		Select("MAX(position)").Scan(&max).Error; err != nil {
		return fmt.Errorf("failed to compute movement position: %w", err)
	}

	position := 0
	if max != nil {
		position = *max + 1
	}

	movement := &models.Movement{
		AccountID:  accountID,
		Amount:     amount,
		OccurredAt: occurredAt,
		Position:   position,
	}

	if err := tx.Create(movement).Error; err != nil {
		return fmt.Errorf("failed to append movement: %w", err)
	}
	return nil
}
