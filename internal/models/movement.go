package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MovementTypeDeposit    = "deposit"
	MovementTypeWithdrawal = "withdrawal"
)

// Movement is a single signed transaction amount on an account: a deposit if
// positive, a withdrawal otherwise. Position preserves insertion order so the
// amount and its timestamp stay aligned the way they were appended.
type Movement struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	OccurredAt time.Time       `gorm:"not null" json:"occurred_at"`
	Position   int             `gorm:"not null" json:"-"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Movement
func (m *Movement) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	if m.OccurredAt.IsZero() {
		m.OccurredAt = m.CreatedAt
	}
	return nil
}

// Kind reports whether the movement is a deposit or a withdrawal.
func (m *Movement) Kind() string {
	if m.Amount.GreaterThan(decimal.Zero) {
		return MovementTypeDeposit
	}
	return MovementTypeWithdrawal
}

// TableName returns the table name for Movement
func (m *Movement) TableName() string {
	return "movements"
}
