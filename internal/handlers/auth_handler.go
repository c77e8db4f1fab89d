package handlers

import (
	goerrors "errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"bankist/internal/config"
	"bankist/internal/dto"
	"bankist/internal/errors"
	"bankist/internal/presenter"
	"bankist/internal/services"
)

// AuthHandler serves login and logout.
type AuthHandler struct {
	sessionManager services.SessionManagerInterface
	accountService services.AccountServiceInterface
	tokenService   services.TokenServiceInterface
	config         *config.Config
	logger         *slog.Logger
}

func NewAuthHandler(
	sessionManager services.SessionManagerInterface,
	accountService services.AccountServiceInterface,
	tokenService services.TokenServiceInterface,
	cfg *config.Config,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		sessionManager: sessionManager,
		accountService: accountService,
		tokenService:   tokenService,
		config:         cfg,
		logger:         logger,
	}
}

// Login authenticates a username and PIN and starts a session. Wrong
// credentials answer 401 without saying which part was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.CodeMalformedRequest)
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.CodeValidationFailed, errors.WithDetails(err.Error()))
	}

	session, err := h.sessionManager.Login(req.Username, req.PIN)
	if err != nil {
		if goerrors.Is(err, services.ErrInvalidCredentials) {
			h.logger.Info("login rejected", "username", req.Username, "ip", getClientIP(c))
			return SendError(c, errors.CodeInvalidCredentials)
		}
		h.logger.Error("login failed", "error", err)
		return SendSystemError(c, err)
	}

	account, err := h.accountService.GetByID(session.AccountID)
	if err != nil {
		h.logger.Error("failed to load account after login", "error", err)
		return SendSystemError(c, err)
	}

	token, err := h.tokenService.GenerateSessionToken(account, session.ID)
	if err != nil {
		h.logger.Error("failed to issue session token", "error", err)
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		SessionID: session.ID.String(),
		Welcome:   presenter.WelcomeMessage(account.FirstName()),
		ExpiresIn: int(h.config.JWT.TokenDuration.Seconds()),
	})
}

// Logout ends the session. Already-expired sessions answer the same way.
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID, err := getSessionIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeNoActiveSession)
	}

	h.sessionManager.Logout(sessionID)
	return c.NoContent(http.StatusNoContent)
}
