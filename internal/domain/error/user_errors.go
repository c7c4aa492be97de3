// Package error defines domain-specific errors for the Hexapixel backend.
package error

import "errors"

// User domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserRoleNotAllowed is returned when the requester may not act on the
	// target user's role.
	ErrUserRoleNotAllowed = errors.New("not allowed to manage this user role")

	// ErrInvalidUserRole is returned when the supplied role is unknown.
	ErrInvalidUserRole = errors.New("invalid user role")

	// ErrMissingUserFields is returned when required user fields are absent.
	ErrMissingUserFields = errors.New("missing required fields")
)

// UserErrorCode defines error codes for user errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUserNotFound       UserErrorCode = "USR-010001"
	ErrCodeUserRoleNotAllowed UserErrorCode = "USR-010002"
	ErrCodeInvalidUserRole    UserErrorCode = "USR-010003"
	ErrCodeMissingUserFields  UserErrorCode = "USR-010004"

	// Internal errors (99XXXX)
	ErrCodeUserInternalError UserErrorCode = "USR-990001"
)

// UserError represents a user error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
