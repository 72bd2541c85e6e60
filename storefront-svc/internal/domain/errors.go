package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrDishNotFound        = errors.New("dish not found")
	ErrTableNotFound       = errors.New("table not found")
	ErrTableUnavailable    = errors.New("table is not available")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReceiptNotFound     = errors.New("receipt not found")
)

// ValidationError carries the message shown to the user and the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
