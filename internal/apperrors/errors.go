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

// ErrInsufficientStock indicates that an inventory change would drive the quantity negative.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrInUse indicates that a resource cannot be deleted because other records still reference it.
var ErrInUse = errors.New("resource is in use")

// ErrExpiredToken indicates that a password reset token is past its expiry window.
var ErrExpiredToken = errors.New("token has expired")

// ErrInvalidToken indicates that a token is unknown, malformed, or already redeemed.
var ErrInvalidToken = errors.New("invalid token")

// ErrForbidden indicates that the authenticated user lacks the role required for the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrUnauthorized indicates missing or failed authentication.
var ErrUnauthorized = errors.New("authentication required")

// AppError wraps a persistence-layer failure with an application status code
// and a message that is safe to surface to callers.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError wrapping the underlying error.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
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
