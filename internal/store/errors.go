package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors (e.g., ErrUserNotFound, ErrPostNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored, or references an entity that does not exist.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrCategoryNotFound indicates that the requested category does not exist in the store.
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)

	// ErrPostNotFound indicates that the requested post does not exist in the store.
	ErrPostNotFound = fmt.Errorf("%w: post", ErrNotFound)

	// ErrCommentNotFound indicates that the requested comment does not exist in the store.
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrCategoryTitleExists indicates that a category with the given title
	// already exists.
	ErrCategoryTitleExists = fmt.Errorf("%w: category title", ErrDuplicate)

	// ErrPostExists indicates that a post with the same title and content
	// pair already exists.
	ErrPostExists = fmt.Errorf("%w: post title and content", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
