package service

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAccountLimit  = errors.New("plan account limit reached")
	ErrNameTaken     = errors.New("account name already in use")
	ErrFeatureLocked = errors.New("feature not included in plan")
	ErrValidation    = errors.New("invalid input")
)

// validationError wraps ErrValidation with a human-readable reason so
// handlers can surface it while still matching with errors.Is.
type validationError struct {
	reason string
}

func (e *validationError) Error() string { return e.reason }

func (e *validationError) Is(target error) bool { return target == ErrValidation }

func invalid(reason string) error {
	return &validationError{reason: reason}
}
