package store

import (
	"context"
	"database/sql"

	"github.com/devpost/blog-api/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
type CategoryStore interface {
	// Create saves a new category to the store and assigns its ID.
	// Returns ErrCategoryTitleExists if the title is already taken.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by its unique ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Category, error)

	// ExistsByTitle reports whether a category with the given title exists.
	// The match is exact and case-sensitive.
	ExistsByTitle(ctx context.Context, title string) (bool, error)

	// List retrieves a page of categories ordered by ascending ID.
	List(ctx context.Context, page, size int) (Page[domain.Category], error)

	// Update modifies an existing category's details.
	// Returns ErrCategoryNotFound if the category does not exist.
	Update(ctx context.Context, category *domain.Category) error

	// Delete removes a category from the store by its ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new CategoryStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CategoryStore
}
