package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bankist/internal/models"
)

// AccountServiceInterface covers the account directory operations: credential
// checks, balance-derived validation for transfers and loans, and closing.
// Execute methods re-validate before writing; callers must not assume an
// earlier Validate still holds.
type AccountServiceInterface interface {
	GetByID(id uuid.UUID) (*models.Account, error)
	Lookup(username string) (*models.Account, error)
	Authenticate(username, pin string) (*models.Account, error)
	ValidateTransfer(fromID uuid.UUID, toUsername string, amount decimal.Decimal) (*models.Account, error)
	ExecuteTransfer(fromID, toID uuid.UUID, amount decimal.Decimal, occurredAt time.Time) error
	ValidateLoan(accountID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	ExecuteLoan(accountID uuid.UUID, amount decimal.Decimal, occurredAt time.Time) error
	Close(accountID uuid.UUID, username, pin string) error
}

// SessionManagerInterface is the interactive surface of the application. One
// session exists per login; every operation on it resets the inactivity
// countdown. Invalid transfer, loan, and close requests are dropped without
// error, matching the silent-rejection contract of the account operations.
type SessionManagerInterface interface {
	Login(username, pin string) (*Session, error)
	Logout(sessionID uuid.UUID)
	Current(sessionID uuid.UUID) (*Session, bool)
	Remaining(sessionID uuid.UUID) (int, bool)
	Touch(sessionID uuid.UUID) bool
	View(sessionID uuid.UUID) (*models.Account, bool, error)
	ToggleSort(sessionID uuid.UUID) error
	Transfer(sessionID uuid.UUID, toUsername string, amount decimal.Decimal) error
	RequestLoan(sessionID uuid.UUID, amount decimal.Decimal) error
	CloseAccount(sessionID uuid.UUID, username, pin string) error
	Shutdown()
}

// TokenServiceInterface issues and verifies the bearer tokens that carry a
// session identity across HTTP requests.
type TokenServiceInterface interface {
	GenerateSessionToken(account *models.Account, sessionID uuid.UUID) (string, error)
	ValidateSessionToken(tokenString string) (*models.SessionClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PINServiceInterface hashes and verifies login PINs.
type PINServiceInterface interface {
	HashPIN(pin string) (string, error)
	ComparePIN(hash, pin string) error
}

// PresenterInterface receives UI state changes. The HTTP layer reads state
// back through the session manager; the presenter is the push side, rendering
// to the log in this build.
type PresenterInterface interface {
	ShowAuthenticatedView(account *models.Account)
	HideAuthenticatedView()
	RenderWelcome(firstName string)
	RenderLoggedOut()
	RenderAccount(account *models.Account, sorted bool)
	RenderCountdown(remaining int)
}

// MetricsRecorderInterface abstracts metrics collection for testability
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
