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

// ErrInvalidAmount indicates a zero or negative point amount.
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrSelfTransfer indicates a transfer where sender and recipient are the same user.
var ErrSelfTransfer = errors.New("cannot transfer points to yourself")

// ErrUnknownRestaurant indicates a restaurant ID that is not present in the catalog.
var ErrUnknownRestaurant = errors.New("unknown restaurant")

// ErrInsufficientBalance indicates the sender's balance does not cover the requested amount.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrDuplicateRequest indicates a request token was reused with a different payload.
var ErrDuplicateRequest = errors.New("duplicate request token")

// ErrLocationUnavailable indicates distance ranking was requested without a caller location.
var ErrLocationUnavailable = errors.New("caller location unavailable")

// ErrStorageUnavailable indicates a transient storage failure. Safe to retry only
// when no mutation can have been applied.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ErrTimeout indicates the operation did not complete in time. Mutating calls are
// safe to retry with the same request token.
var ErrTimeout = errors.New("operation timed out")

// AppError carries a status code alongside a message and a wrapped cause.
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

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
