package services

import (
	"errors"
	"fmt"
)

// ValidationError reports bad user input caught before any write.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var (
	// ErrNotFound is returned when a catalog record the caller asked for by
	// id does not exist (or is inactive).
	ErrNotFound = errors.New("record not found")

	// ErrCustomerNotFound is a lookup miss, not a failure: it sends the
	// workflow down the registration branch.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrCatalogUnavailable means the catalog could not be read; callers must
	// not treat a partial catalog as valid.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrOrderCreationFailed wraps store-side failures during order
	// submission. Session state is left intact so the user can retry.
	ErrOrderCreationFailed = errors.New("order creation failed")

	// ErrIndexOutOfRange is returned by OrderSession.RemoveAt for an index
	// with no item.
	ErrIndexOutOfRange = errors.New("item index out of range")
)
