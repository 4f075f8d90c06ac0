package pos

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilOrder is returned when there is no order to translate
	ErrNilOrder = errors.New("pos: order is nil")
	// ErrNilRequest is returned when there is no request to extend
	ErrNilRequest = errors.New("pos: request is nil")
	// ErrPLUMissing is returned when an order line has no PLU translation
	ErrPLUMissing = errors.New("pos: plu number missing")
	// ErrInvalidRequest is the class of every validation rule failure
	ErrInvalidRequest = errors.New("pos: invalid order request")
)

// MissingPLUError lists the products that have no PLU translation
type MissingPLUError struct {
	ProductIDs []int64
}

func (e *MissingPLUError) Error() string {
	ids := make([]string, len(e.ProductIDs))
	for i, id := range e.ProductIDs {
		ids[i] = fmt.Sprint(id)
	}
	return fmt.Sprintf("%s for products [%s]", ErrPLUMissing, strings.Join(ids, ", "))
}

func (e *MissingPLUError) Unwrap() error {
	return ErrPLUMissing
}

// ValidationError is a named request rule failure
type ValidationError struct {
	// Field is the request field the rule checks
	Field string
	// Message describes what is missing
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
