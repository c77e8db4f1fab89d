package middleware

import (
	goerrors "errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bankist/internal/errors"
	"bankist/internal/handlers"
	"bankist/internal/services"
)

// RequireSession validates the bearer token and checks the session is still
// alive. A valid token whose session has since expired or been replaced
// answers with a session error, not a token error.
func RequireSession(tokenService services.TokenServiceInterface, sessionManager services.SessionManagerInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.CodeMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.CodeInvalidToken)
			}

			claims, err := tokenService.ValidateSessionToken(token)
			if err != nil {
				if goerrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.CodeExpiredToken)
				}
				return handlers.SendError(c, errors.CodeInvalidToken)
			}

			sessionID, err := uuid.Parse(claims.SessionID)
			if err != nil {
				return handlers.SendError(c, errors.CodeInvalidToken, errors.WithDetails("Invalid session ID in token"))
			}

			session, ok := sessionManager.Current(sessionID)
			if !ok {
				return handlers.SendError(c, errors.CodeSessionExpired)
			}

			c.Set("session_id", session.ID)
			c.Set("account_id", session.AccountID)
			c.Set("username", session.Username)

			return next(c)
		}
	}
}

// TouchSession resets the inactivity countdown. It runs on the account routes
// but not on the countdown poll, so watching the clock does not keep the
// session alive.
func TouchSession(sessionManager services.SessionManagerInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if sessionID, ok := c.Get("session_id").(uuid.UUID); ok {
				sessionManager.Touch(sessionID)
			}
			return next(c)
		}
	}
}
