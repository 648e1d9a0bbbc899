package model

import (
	"errors"
	"fmt"
)

// Base error kinds, checked with errors.Is in the handler layer.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
)

// Timer transition errors
var (
	ErrMissingSubject = fmt.Errorf("%w: work session requires a subject", ErrValidation)
	ErrNotRunning     = fmt.Errorf("%w: timer is not running", ErrInvalidState)
	ErrAlreadyRunning = fmt.Errorf("%w: timer is already running", ErrInvalidState)
)

// Ledger errors
var (
	ErrTaskNotFound = fmt.Errorf("%w: task not found", ErrNotFound)
)

// Account errors
var (
	ErrUserExists         = fmt.Errorf("%w: username already taken", ErrInvalidState)
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// NewValidationError wraps a field-level message into the validation kind.
func NewValidationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
