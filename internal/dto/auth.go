package dto

// LoginRequest carries the login form fields. The PIN arrives as a string so
// leading zeros survive transport; the numeric rule rejects anything else.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=20"`
	PIN      string `json:"pin" validate:"required,numeric"`
}

// LoginResponse returns the session token plus the fields a client needs to
// render the authenticated view header.
type LoginResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
	Welcome   string `json:"welcome"`
	ExpiresIn int    `json:"expires_in"`
}
