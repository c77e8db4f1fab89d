package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrMissingOwner     = errors.New("owner name is required")
	ErrMissingPINHash   = errors.New("pin hash is required")
	ErrNegativeInterest = errors.New("interest rate cannot be negative")
	ErrMissingCurrency  = errors.New("currency is required")
)

// Account represents one bank customer in the directory. The username is
// derived from the owner name at seed time and is the only login identifier.
// Balance is never stored; it is always recomputed from the movements.
type Account struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Owner        string          `gorm:"type:varchar(100);not null" json:"owner"`
	Username     string          `gorm:"type:varchar(20);not null;index" json:"username"`
	PINHash      string          `gorm:"type:varchar(100);not null" json:"-"`
	InterestRate decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"interest_rate"`
	Currency     string          `gorm:"type:varchar(3);not null;default:'EUR'" json:"currency"`
	Locale       string          `gorm:"type:varchar(10);not null;default:'en-US'" json:"locale"`
	Position     int             `gorm:"not null;index" json:"-"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Movements []Movement `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Username == "" {
		a.Username = DeriveUsername(a.Owner)
	}

	if a.Currency == "" {
		a.Currency = "EUR"
	}
	if a.Locale == "" {
		a.Locale = "en-US"
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Owner) == "" {
		return ErrMissingOwner
	}

	if a.PINHash == "" {
		return ErrMissingPINHash
	}

	if a.InterestRate.LessThan(decimal.Zero) {
		return ErrNegativeInterest
	}

	if a.Currency == "" {
		return ErrMissingCurrency
	}

	return nil
}

// FirstName returns the first whitespace-separated token of the owner name,
// used for the welcome message.
func (a *Account) FirstName() string {
	fields := strings.Fields(a.Owner)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Balance returns the derived balance: the sum of all loaded movements.
func (a *Account) Balance() decimal.Decimal {
	return ComputeBalance(a.Movements)
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// DeriveUsername builds the login username from an owner name: the first
// character of each whitespace-separated token, lowercased. "Jonas
// Schmedtmann" becomes "js". An empty owner yields an empty username.
// Uniqueness is not enforced; lookups resolve collisions first-match.
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, token := range strings.Fields(strings.ToLower(owner)) {
		r := []rune(token)
		b.WriteRune(r[0])
	}
	return b.String()
}
