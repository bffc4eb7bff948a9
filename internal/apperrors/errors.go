package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrAlreadyVoid indicates that a receipt has already been voided.
var ErrAlreadyVoid = errors.New("receipt is already void")

// ErrInsufficientDebtBalance indicates that an allocation would exceed a
// debt line item's remaining balance.
var ErrInsufficientDebtBalance = errors.New("allocation exceeds remaining debt balance")

// ErrConcurrencyConflict indicates that two writers raced on the same row
// and the losing one should retry.
var ErrConcurrencyConflict = errors.New("concurrent modification conflict")

// ErrConflict indicates the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict with current resource state")

// ErrInternal indicates an unexpected failure in the underlying store or runtime.
var ErrInternal = errors.New("internal error")

// AppError wraps a lower-level error with a status code and a message that is
// safe to surface to callers. Repositories use it to attach context to
// persistence failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
