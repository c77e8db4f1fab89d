package handlers

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when session context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getSessionIDFromContext extracts the session ID set by the session
// middleware. Returns ErrUnauthorized if it is missing or of the wrong type.
func getSessionIDFromContext(c echo.Context) (uuid.UUID, error) {
	sessionIDValue := c.Get("session_id")
	if sessionIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	sessionID, ok := sessionIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return sessionID, nil
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
