package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the JWT claims carried by a session token. The session ID
// binds the token to the single live session: once that session is cleared,
// tokens minted for it stop working even before they expire.
type SessionClaims struct {
	jwt.RegisteredClaims
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
	SessionID string `json:"session_id"`
	TokenType string `json:"token_type"`
}
