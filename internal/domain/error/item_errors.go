// Package error defines domain-specific errors for the Hexapixel backend.
package error

import "errors"

// Item catalog domain errors.
var (
	// ErrItemNotFound is returned when a catalog item is not found.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemNameTaken is returned when an item with the same name exists in
	// the same catalog.
	ErrItemNameTaken = errors.New("item with this name already exists")

	// ErrItemNameRequired is returned when the item name is empty.
	ErrItemNameRequired = errors.New("item name is required")

	// ErrInvalidItemKind is returned when the catalog kind is unknown.
	ErrInvalidItemKind = errors.New("invalid item kind")
)

// ItemErrorCode defines error codes for item errors.
// Format: ITM-XXYYYY where XX is category and YYYY is specific error.
type ItemErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeItemNotFound     ItemErrorCode = "ITM-010001"
	ErrCodeItemNameTaken    ItemErrorCode = "ITM-010002"
	ErrCodeItemNameRequired ItemErrorCode = "ITM-010003"
	ErrCodeInvalidItemKind  ItemErrorCode = "ITM-010004"

	// Internal errors (99XXXX)
	ErrCodeItemInternalError ItemErrorCode = "ITM-990001"
)

// ItemError represents an item error with code and message.
type ItemError struct {
	Code    ItemErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ItemError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ItemError) Unwrap() error {
	return e.Err
}

// NewItemError creates a new ItemError with the given code and message.
func NewItemError(code ItemErrorCode, message string, err error) *ItemError {
	return &ItemError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
