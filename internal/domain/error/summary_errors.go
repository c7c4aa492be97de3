// Package error defines domain-specific errors for the Hexapixel backend.
package error

import "errors"

// Summary/reporting domain errors. Validation errors are always raised before
// any store access; store failures propagate wrapped, never silently zeroed.
var (
	// ErrInvalidPeriodType is returned for tokens outside today/7days/30days.
	ErrInvalidPeriodType = errors.New("invalid type, use today, 7days, or 30days")

	// ErrInvalidCountPeriodType is returned for tokens outside 3days/7days/30days.
	ErrInvalidCountPeriodType = errors.New("invalid type, use 3days, 7days, or 30days")

	// ErrInvalidChartKind is returned when the chart kind is not income/outcome.
	ErrInvalidChartKind = errors.New("invalid type, use income or outcome")

	// ErrInvalidChartDays is returned when the chart day count is not 7, 14 or 30.
	ErrInvalidChartDays = errors.New("invalid typeDate, use 7, 14, or 30")
)

// SummaryErrorCode defines error codes for summary errors.
// Format: SUM-XXYYYY where XX is category and YYYY is specific error.
type SummaryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriodType      SummaryErrorCode = "SUM-010001"
	ErrCodeInvalidCountPeriodType SummaryErrorCode = "SUM-010002"
	ErrCodeInvalidChartKind       SummaryErrorCode = "SUM-010003"
	ErrCodeInvalidChartDays       SummaryErrorCode = "SUM-010004"

	// Internal errors (99XXXX)
	ErrCodeSummaryInternalError SummaryErrorCode = "SUM-990001"
)

// SummaryError represents a summary error with code and message.
type SummaryError struct {
	Code    SummaryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SummaryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SummaryError) Unwrap() error {
	return e.Err
}

// NewSummaryError creates a new SummaryError with the given code and message.
func NewSummaryError(code SummaryErrorCode, message string, err error) *SummaryError {
	return &SummaryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
