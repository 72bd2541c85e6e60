package service

import (
	"errors"
	"fmt"

	"foodcourt/backend"
	"foodcourt/dashboard-svc/internal/domain"
)

// backendError folds backend failures into the dashboard's error set.
func backendError(op string, err error) error {
	if errors.Is(err, backend.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	var serr *backend.StatusError
	if errors.As(err, &serr) && serr.StatusCode == 400 {
		return domain.Invalid(op, serr.Message)
	}
	return fmt.Errorf("%s: %w: %v", op, domain.ErrBackendUnavailable, err)
}
