package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bankist/internal/models"
	"bankist/internal/repositories"
)

var (
	ErrInvalidCredentials     = errors.New("invalid username or PIN")
	ErrAccountNotFound        = errors.New("account not found")
	ErrRecipientNotFound      = errors.New("recipient account not found")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrSelfTransfer           = errors.New("cannot transfer to own account")
	ErrInsufficientCollateral = errors.New("no deposit large enough to back the loan")
)

// loanCollateralRatio: a loan is granted only if some past movement is at
// least this fraction of the requested amount.
var loanCollateralRatio = decimal.New(1, -1)

type accountService struct {
	accountRepo repositories.AccountRepositoryInterface
	pinService  PINServiceInterface
	logger      *slog.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	pinService PINServiceInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		accountRepo: accountRepo,
		pinService:  pinService,
		logger:      logger,
	}
}

func (s *accountService) GetByID(id uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return account, nil
}

// Lookup resolves a username to an account. Colliding usernames resolve to
// the account earliest in the directory.
func (s *accountService) Lookup(username string) (*models.Account, error) {
	account, err := s.accountRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	return account, nil
}

// Authenticate checks username and PIN. Unknown usernames and wrong PINs both
// come back as ErrInvalidCredentials; callers cannot distinguish them.
func (s *accountService) Authenticate(username, pin string) (*models.Account, error) {
	account, err := s.Lookup(username)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.pinService.ComparePIN(account.PINHash, pin); err != nil {
		s.logger.Debug("PIN mismatch", "username", username)
		return nil, ErrInvalidCredentials
	}

	return account, nil
}

// ValidateTransfer checks a transfer request without writing anything. All
// four conditions must hold: positive amount, known recipient, recipient
// different from sender, and sender balance covering the amount. Returns the
// resolved recipient on success.
func (s *accountService) ValidateTransfer(fromID uuid.UUID, toUsername string, amount decimal.Decimal) (*models.Account, error) {
	if !amount.GreaterThan(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	sender, err := s.GetByID(fromID)
	if err != nil {
		return nil, err
	}

	recipient, err := s.Lookup(toUsername)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, err
	}

	if recipient.Username == sender.Username {
		return nil, ErrSelfTransfer
	}

	if sender.Balance().LessThan(amount) {
		return nil, ErrInsufficientFunds
	}

	return recipient, nil
}

// ExecuteTransfer re-validates against current state and writes the paired
// movements atomically. Both legs share the same timestamp.
func (s *accountService) ExecuteTransfer(fromID, toID uuid.UUID, amount decimal.Decimal, occurredAt time.Time) error {
	if !amount.GreaterThan(decimal.Zero) {
		return ErrInvalidAmount
	}

	sender, err := s.GetByID(fromID)
	if err != nil {
		return err
	}

	recipient, err := s.GetByID(toID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrRecipientNotFound
		}
		return err
	}

	if recipient.Username == sender.Username {
		return ErrSelfTransfer
	}

	if sender.Balance().LessThan(amount) {
		return ErrInsufficientFunds
	}

	if err := s.accountRepo.AppendTransferPair(fromID, toID, amount, occurredAt); err != nil {
		return fmt.Errorf("failed to record transfer: %w", err)
	}

	s.logger.Info("transfer settled",
		"from", sender.Username,
		"to", recipient.Username,
		"amount", amount.String(),
	)
	return nil
}

// ValidateLoan checks a loan request and returns the granted amount: the
// request rounded down to a whole unit. A loan is granted only when the
// rounded amount is positive and some existing movement reaches one tenth of
// it.
func (s *accountService) ValidateLoan(accountID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	granted := amount.Floor()
	if !granted.GreaterThan(decimal.Zero) {
		return decimal.Zero, ErrInvalidAmount
	}

	account, err := s.GetByID(accountID)
	if err != nil {
		return decimal.Zero, err
	}

	required := granted.Mul(loanCollateralRatio)
	for _, mov := range account.Movements {
		if mov.Amount.GreaterThanOrEqual(required) {
			return granted, nil
		}
	}

	return decimal.Zero, ErrInsufficientCollateral
}

// ExecuteLoan re-validates and credits the granted amount as a deposit.
func (s *accountService) ExecuteLoan(accountID uuid.UUID, amount decimal.Decimal, occurredAt time.Time) error {
	granted, err := s.ValidateLoan(accountID, amount)
	if err != nil {
		return err
	}

	if err := s.accountRepo.AppendMovement(accountID, granted, occurredAt); err != nil {
		return fmt.Errorf("failed to record loan: %w", err)
	}

	s.logger.Info("loan settled", "account_id", accountID, "amount", granted.String())
	return nil
}

// Close removes an account permanently. The confirmation credentials must
// match the account being closed; anything else is rejected.
func (s *accountService) Close(accountID uuid.UUID, username, pin string) error {
	account, err := s.GetByID(accountID)
	if err != nil {
		return err
	}

	if account.Username != username {
		return ErrInvalidCredentials
	}

	if err := s.pinService.ComparePIN(account.PINHash, pin); err != nil {
		return ErrInvalidCredentials
	}

	if err := s.accountRepo.Delete(accountID); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to close account: %w", err)
	}

	s.logger.Info("account closed", "username", account.Username)
	return nil
}
