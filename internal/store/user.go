package store

import (
	"context"
	"database/sql"

	"github.com/devpost/blog-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// It doubles as the credential store consumed by the authentication gate.
type UserStore interface {
	// Create saves a new user to the store and assigns its ID.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// ExistsByEmail reports whether a user with the given email exists.
	// The match is exact and case-sensitive.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// List retrieves a page of users ordered by ascending ID.
	List(ctx context.Context, page, size int) (Page[domain.User], error)

	// Update modifies an existing user's details.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Owned posts and comments are removed by the schema's cascade rules.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) UserStore
}
