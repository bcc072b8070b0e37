package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDayClosed indicates that the business day for the operation has been
// closed and further mutation is locked until an admin re-opens it.
var ErrDayClosed = errors.New("business day is closed")

// ErrPrereqMissing indicates that the operation requires prior state that has
// not been established yet (e.g. closing a day with no opening balance set).
var ErrPrereqMissing = errors.New("prerequisite state missing")

// ErrUnknownCurrency indicates the referenced currency code is absent or inactive.
var ErrUnknownCurrency = errors.New("currency not found or inactive")

// ErrConflict indicates the operation conflicts with existing state
// (e.g. deleting a currency still referenced by transactions).
var ErrConflict = errors.New("operation conflicts with existing state")

// ErrForbidden indicates the caller lacks the role required for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates the caller is not authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// AppError wraps an underlying error with an HTTP-equivalent status code and a
// message safe to surface to callers.
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

// NewAppError creates an AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
