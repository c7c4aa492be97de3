// Package dto defines request and response shapes for the API endpoints.
package dto

// Envelope is the uniform response wrapper. Every endpoint, success or
// failure, responds with a message and a result.
type Envelope struct {
	Message string      `json:"message"`
	Result  interface{} `json:"result"`
}

// ErrorDetail carries the machine-readable error code inside a failure
// envelope.
type ErrorDetail struct {
	Code string `json:"code"`
}

// Pagination carries page metadata for list responses.
type Pagination struct {
	Page      int   `json:"page"`
	Limit     int   `json:"limit"`
	Total     int64 `json:"total"`
	TotalPage int   `json:"totalPage"`
}

// OK builds a success envelope.
func OK(message string, result interface{}) Envelope {
	return Envelope{Message: message, Result: result}
}

// Error builds a failure envelope with an error code.
func Error(message, code string) Envelope {
	return Envelope{Message: message, Result: ErrorDetail{Code: code}}
}
