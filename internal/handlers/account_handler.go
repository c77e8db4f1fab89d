package handlers

import (
	goerrors "errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"bankist/internal/dto"
	"bankist/internal/errors"
	"bankist/internal/presenter"
	"bankist/internal/services"
)

// AccountHandler serves the authenticated account view and the three account
// operations. Transfer, loan, and close share one contract: a well-formed
// request always answers 202, whether or not it takes effect.
type AccountHandler struct {
	sessionManager services.SessionManagerInterface
	logger         *slog.Logger
}

func NewAccountHandler(sessionManager services.SessionManagerInterface, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		sessionManager: sessionManager,
		logger:         logger,
	}
}

// View returns the account with movements, summary, and sort state.
func (h *AccountHandler) View(c echo.Context) error {
	sessionID, err := getSessionIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeNoActiveSession)
	}

	account, sorted, err := h.sessionManager.View(sessionID)
	if err != nil {
		if goerrors.Is(err, services.ErrNoActiveSession) {
			return SendError(c, errors.CodeNoActiveSession)
		}
		h.logger.Error("failed to load account view", "error", err)
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, presenter.BuildAccountView(account, sorted, time.Now()))
}

// Transfer requests a transfer to another account.
func (h *AccountHandler) Transfer(c echo.Context) error {
	sessionID, err := getSessionIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeNoActiveSession)
	}

	var req dto.TransferRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.CodeMalformedRequest)
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.CodeValidationFailed, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.CodeValidationFailed, errors.WithDetails("amount: must be a decimal number"))
	}

	if err := h.sessionManager.Transfer(sessionID, req.To, amount); err != nil {
		if goerrors.Is(err, services.ErrNoActiveSession) {
			return SendError(c, errors.CodeNoActiveSession)
		}
		h.logger.Error("transfer request failed", "error", err)
		return SendSystemError(c, err)
	}

	return SendAccepted(c)
}

// Loan requests a loan.
func (h *AccountHandler) Loan(c echo.Context) error {
	sessionID, err := getSessionIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeNoActiveSession)
	}

	var req dto.LoanRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.CodeMalformedRequest)
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.CodeValidationFailed, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.CodeValidationFailed, errors.WithDetails("amount: must be a decimal number"))
	}

	if err := h.sessionManager.RequestLoan(sessionID, amount); err != nil {
		if goerrors.Is(err, services.ErrNoActiveSession) {
			return SendError(c, errors.CodeNoActiveSession)
		}
		h.logger.Error("loan request failed", "error", err)
		return SendSystemError(c, err)
	}

	return SendAccepted(c)
}

// ToggleSort flips the movements between insertion order and ascending
// amount order, and returns the re-rendered view.
func (h *AccountHandler) ToggleSort(c echo.Context) error {
	sessionID, err := getSessionIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeNoActiveSession)
	}

	if err := h.sessionManager.ToggleSort(sessionID); err != nil {
		if goerrors.Is(err, services.ErrNoActiveSession) {
			return SendError(c, errors.CodeNoActiveSession)
		}
		h.logger.Error("sort toggle failed", "error", err)
		return SendSystemError(c, err)
	}

	account, sorted, err := h.sessionManager.View(sessionID)
	if err != nil {
		if goerrors.Is(err, services.ErrNoActiveSession) {
			return SendError(c, errors.CodeNoActiveSession)
		}
		h.logger.Error("failed to load account view", "error", err)
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, presenter.BuildAccountView(account, sorted, time.Now()))
}

// Close confirms account closure with the owner's credentials. A mismatch is
// dropped and the response does not reveal it.
func (h *AccountHandler) Close(c echo.Context) error {
	sessionID, err := getSessionIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeNoActiveSession)
	}

	var req dto.CloseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.CodeMalformedRequest)
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.CodeValidationFailed, errors.WithDetails(err.Error()))
	}

	if err := h.sessionManager.CloseAccount(sessionID, req.Username, req.PIN); err != nil {
		if goerrors.Is(err, services.ErrNoActiveSession) {
			return SendError(c, errors.CodeNoActiveSession)
		}
		h.logger.Error("close request failed", "error", err)
		return SendSystemError(c, err)
	}

	return SendAccepted(c)
}
