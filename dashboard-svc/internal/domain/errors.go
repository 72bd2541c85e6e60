package domain

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrBackendUnavailable   = errors.New("backend unavailable")
	ErrTableUnavailable     = errors.New("table is not available")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
