package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/devpost/blog-api/internal/api/shared"
	"github.com/devpost/blog-api/internal/domain"
	"github.com/devpost/blog-api/internal/service"
	"github.com/devpost/blog-api/internal/service/auth"
	"github.com/devpost/blog-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case auth.IsAuthenticationError(err),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// A missing principal on an ownership-gated route means the
	// authentication gate did not run first: an internal invariant
	// violation, not a client error.
	case errors.Is(err, service.ErrNoPrincipal):
		return http.StatusInternalServerError

	// Authorization errors
	case errors.Is(err, service.ErrNotOwner):
		return http.StatusForbidden

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		domain.IsValidationError(err):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case auth.IsAuthenticationError(err):
		return "Invalid credentials"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Authentication required"

	// Authorization errors
	case errors.Is(err, service.ErrNotOwner):
		return "You do not own this resource"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrCategoryNotFound):
		return "Category not found"

	case errors.Is(err, store.ErrPostNotFound):
		return "Post not found"

	case errors.Is(err, store.ErrCommentNotFound):
		return "Comment not found"

	case store.IsNotFoundError(err):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrCategoryTitleExists):
		return "Category title already exists"

	case errors.Is(err, store.ErrPostExists):
		return "Post with this title and content already exists"

	case store.IsDuplicateError(err):
		return "Resource already exists"

	// Bad request errors
	case domain.IsValidationError(err):
		return err.Error()

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps the error to a status code and safe message and writes
// the JSON error response. The fallbackMessage overrides the derived message
// when non-empty and the error maps to a server-side failure.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if fallbackMessage != "" && status >= http.StatusInternalServerError {
		message = fallbackMessage
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'RegisterRequest.Email' Error:Field validation
	// for 'Email' failed on the 'required' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
