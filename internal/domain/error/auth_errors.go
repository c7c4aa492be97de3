// Package error defines domain-specific errors for the Hexapixel backend.
package error

import "errors"

// Auth domain errors.
var (
	// ErrInvalidCredentials is returned when username or password is wrong.
	// The same error covers both cases so callers cannot probe usernames.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrSuperAdminRegistered is returned when a super admin already exists.
	ErrSuperAdminRegistered = errors.New("super admin already registered")

	// ErrUsernameTaken is returned when the username is already in use.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrMissingToken is returned when no token is supplied.
	ErrMissingToken = errors.New("authorization token is required")

	// ErrInvalidToken is returned when a token is malformed, expired or revoked.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrOldPasswordIncorrect is returned when the current password does not match.
	ErrOldPasswordIncorrect = errors.New("old password is incorrect")

	// ErrPasswordTooShort is returned when a password is shorter than six characters.
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCredentials   AuthErrorCode = "AUTH-010001"
	ErrCodeSuperAdminRegistered AuthErrorCode = "AUTH-010002"
	ErrCodeUsernameTaken        AuthErrorCode = "AUTH-010003"
	ErrCodeOldPasswordIncorrect AuthErrorCode = "AUTH-010004"
	ErrCodePasswordTooShort     AuthErrorCode = "AUTH-010005"

	// Token errors (02XXXX)
	ErrCodeMissingToken AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-020002"

	// Throttling errors (03XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-030001"

	// Internal errors (99XXXX)
	ErrCodeAuthInternalError AuthErrorCode = "AUTH-990001"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
