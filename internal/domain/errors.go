// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an identifier is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when an operation requires an authenticated
	// principal and none is present in the request context.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// ValidationError carries the field that failed validation together with a
// human-readable reason. It wraps one of the sentinel errors above so that
// callers can still branch with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError wrapping the given sentinel.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// IsValidationError checks if the error is one of the domain's field
// validation errors, including the per-entity sentinels.
func IsValidationError(err error) bool {
	if errors.Is(err, ErrValidation) || errors.Is(err, ErrInvalidID) {
		return true
	}
	for _, sentinel := range []error{
		ErrUserNameEmpty, ErrUserEmailEmpty, ErrUserPasswordEmpty,
		ErrCategoryTitleEmpty,
		ErrPostTitleEmpty, ErrPostContentEmpty, ErrPostCategoryEmpty, ErrPostUserEmpty,
		ErrCommentContentBlank, ErrCommentPostEmpty, ErrCommentUserEmpty,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
