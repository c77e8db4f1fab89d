package errors

// Error codes for authentication and session handling
const (
	CodeInvalidCredentials = "AUTH_001"
	CodeMissingToken       = "AUTH_002"
	CodeInvalidToken       = "AUTH_003"
	CodeExpiredToken       = "AUTH_004"
	CodeSessionExpired     = "SESSION_001"
	CodeNoActiveSession    = "SESSION_002"
)

// Error codes for validation
const (
	CodeValidationFailed = "VALIDATION_001"
	CodeMalformedRequest = "VALIDATION_002"
)

// Error codes for account operations
const (
	CodeAccountNotFound = "ACCOUNT_001"
)

// Error codes for system failures
const (
	CodeInternalError      = "SYSTEM_001"
	CodeDatabaseError      = "SYSTEM_002"
	CodeRateLimitExceeded  = "SYSTEM_003"
	CodeServiceUnavailable = "SYSTEM_004"
)

var errorMessages = map[string]string{
	CodeInvalidCredentials: "Invalid username or PIN",
	CodeMissingToken:       "Authorization token is required",
	CodeInvalidToken:       "Authorization token is invalid",
	CodeExpiredToken:       "Authorization token has expired",
	CodeSessionExpired:     "Session has expired",
	CodeNoActiveSession:    "No active session",
	CodeValidationFailed:   "Request validation failed",
	CodeMalformedRequest:   "Request body is malformed",
	CodeAccountNotFound:    "Account not found",
	CodeInternalError:      "An internal error occurred",
	CodeDatabaseError:      "A database error occurred",
	CodeRateLimitExceeded:  "Too many requests",
	CodeServiceUnavailable: "Service is temporarily unavailable",
}

// GetErrorMessage returns the canonical message for a code.
func GetErrorMessage(code string) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return errorMessages[CodeInternalError]
}

// IsValidErrorCode reports whether the code is part of the catalog.
func IsValidErrorCode(code string) bool {
	_, ok := errorMessages[code]
	return ok
}
