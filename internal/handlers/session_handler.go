package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"bankist/internal/errors"
	"bankist/internal/presenter"
	"bankist/internal/services"
)

// SessionHandler serves the countdown. The route is deliberately outside the
// touch middleware: polling the clock must not keep the session alive.
type SessionHandler struct {
	sessionManager services.SessionManagerInterface
	logger         *slog.Logger
}

func NewSessionHandler(sessionManager services.SessionManagerInterface, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		sessionManager: sessionManager,
		logger:         logger,
	}
}

// Countdown reports the seconds left on the inactivity clock.
func (h *SessionHandler) Countdown(c echo.Context) error {
	sessionID, err := getSessionIDFromContext(c)
	if err != nil {
		return SendError(c, errors.CodeNoActiveSession)
	}

	remaining, ok := h.sessionManager.Remaining(sessionID)
	if !ok {
		return SendError(c, errors.CodeSessionExpired)
	}

	return c.JSON(http.StatusOK, presenter.BuildCountdownView(remaining))
}
