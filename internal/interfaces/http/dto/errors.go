package dto

import "net/http"

// Error codes returned in ErrorInfo.Code. Domain error codes from
// shared.DomainError pass through unchanged.
const (
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeInvalidState    = "INVALID_STATE"
	ErrCodeUpstream        = "UPSTREAM_FAILURE"
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
)

// POS request error codes
const (
	// ErrCodePLUMissing means an order line has no PLU translation
	ErrCodePLUMissing = "PLU_MISSING"
	// ErrCodeInvalidRequest means the built request failed a validation rule
	ErrCodeInvalidRequest = "INVALID_REQUEST"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeInvalidState:    http.StatusUnprocessableEntity,
	ErrCodeUpstream:        http.StatusBadGateway,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	ErrCodePLUMissing:     http.StatusUnprocessableEntity,
	ErrCodeInvalidRequest: http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
