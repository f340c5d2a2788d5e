package model

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the store, the workflow and the API.
var (
	ErrNotFound         = errors.New("not found")
	ErrNotPending       = errors.New("request is not pending")
	ErrValidation       = errors.New("validation failed")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrConflict         = errors.New("conflict")
)

// Invalid returns an ErrValidation error with the given reason.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
