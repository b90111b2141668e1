package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/devpost/blog-api/internal/domain"
	"github.com/devpost/blog-api/internal/service"
	"github.com/devpost/blog-api/internal/service/auth"
	"github.com/devpost/blog-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "nil error",
			err:            nil,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "missing credentials",
			err:            auth.ErrMissingCredentials,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed credentials",
			err:            auth.ErrMalformedCredentials,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid credentials",
			err:            auth.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrapped authentication error",
			err:            fmt.Errorf("failed to login: %w", auth.ErrInvalidCredentials),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "ownership error",
			err:            service.ErrNotOwner,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "missing principal is an internal failure",
			err:            service.ErrNoPrincipal,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "user not found",
			err:            store.ErrUserNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "wrapped post not found",
			err:            fmt.Errorf("failed to retrieve post: %w", store.ErrPostNotFound),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "duplicate email",
			err:            store.ErrEmailExists,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "duplicate post pair",
			err:            store.ErrPostExists,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "duplicate category title",
			err:            store.ErrCategoryTitleExists,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "domain validation error",
			err:            domain.ErrPostTitleEmpty,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid path id",
			err:            domain.NewValidationError("postID", "has invalid format", domain.ErrInvalidID),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid entity",
			err:            store.ErrInvalidEntity,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown error",
			err:            errors.New("database exploded"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error", err: nil, expected: "An unexpected error occurred"},
		{name: "invalid credentials", err: auth.ErrInvalidCredentials, expected: "Invalid credentials"},
		{name: "not owner", err: service.ErrNotOwner, expected: "You do not own this resource"},
		{name: "missing principal stays generic", err: service.ErrNoPrincipal, expected: "An unexpected error occurred"},
		{name: "user not found", err: store.ErrUserNotFound, expected: "User not found"},
		{name: "category not found", err: store.ErrCategoryNotFound, expected: "Category not found"},
		{name: "post not found", err: store.ErrPostNotFound, expected: "Post not found"},
		{name: "comment not found", err: store.ErrCommentNotFound, expected: "Comment not found"},
		{name: "email exists", err: store.ErrEmailExists, expected: "Email already exists"},
		{name: "category title exists", err: store.ErrCategoryTitleExists, expected: "Category title already exists"},
		{
			name:     "post exists",
			err:      store.ErrPostExists,
			expected: "Post with this title and content already exists",
		},
		{
			name:     "unknown error hides the details",
			err:      errors.New("pq: connection reset by peer"),
			expected: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	err := errors.New(
		"Key: 'RegisterRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag",
	)
	assert.Equal(t, "Invalid Email: required field", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
}
