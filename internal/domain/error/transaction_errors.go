// Package error defines domain-specific errors for the Hexapixel backend.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrMissingTransactionFields is returned when required fields are absent.
	ErrMissingTransactionFields = errors.New("missing required fields")

	// ErrNotAllowedToModify is returned when the requester may not update the
	// transaction (employees may only touch their own records).
	ErrNotAllowedToModify = errors.New("not allowed to modify this transaction")

	// ErrNotAllowedToDelete is returned when the requester role may not delete
	// transactions.
	ErrNotAllowedToDelete = errors.New("not allowed to delete transactions")

	// ErrInvalidExportMonth is returned when the export month token is unknown.
	ErrInvalidExportMonth = errors.New("invalid export month, use currMonth or prevMonth")

	// ErrReceiptRequired is returned when an outcome is created without a receipt.
	ErrReceiptRequired = errors.New("receipt file is required")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-010001"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010002"
	ErrCodeNotAllowedToModify       TransactionErrorCode = "TXN-010003"
	ErrCodeNotAllowedToDelete       TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidExportMonth       TransactionErrorCode = "TXN-010005"
	ErrCodeReceiptRequired          TransactionErrorCode = "TXN-010006"

	// Internal errors (99XXXX)
	ErrCodeTransactionInternalError TransactionErrorCode = "TXN-990001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
