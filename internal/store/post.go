package store

import (
	"context"
	"database/sql"

	"github.com/devpost/blog-api/internal/domain"
)

// PostDetail is a post joined with the names of its owning category and
// author. It is the shape handed to the report renderers.
type PostDetail struct {
	Post          domain.Post
	CategoryTitle string
	UserName      string
}

// PostStore defines the interface for post data persistence.
type PostStore interface {
	// Create saves a new post to the store and assigns its ID.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by its unique ID.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// GetDetailByID retrieves a post joined with its category title and
	// author name. Returns ErrPostNotFound if the post does not exist.
	GetDetailByID(ctx context.Context, id int64) (*PostDetail, error)

	// ExistsByTitleAndContent reports whether any post carries both the
	// given title and the given content. A post matching only one of the
	// two fields is not a duplicate.
	ExistsByTitleAndContent(ctx context.Context, title, content string) (bool, error)

	// List retrieves a page of all posts ordered by ascending ID.
	List(ctx context.Context, page, size int) (Page[domain.Post], error)

	// ListByCategory retrieves a page of posts belonging to the given category.
	ListByCategory(ctx context.Context, categoryID int64, page, size int) (Page[domain.Post], error)

	// ListByUser retrieves a page of posts authored by the given user.
	ListByUser(ctx context.Context, userID int64, page, size int) (Page[domain.Post], error)

	// Search retrieves a page of posts whose title or content contains the
	// keyword as a case-sensitive substring.
	Search(ctx context.Context, keyword string, page, size int) (Page[domain.Post], error)

	// Update modifies an existing post's details.
	// Returns ErrPostNotFound if the post does not exist.
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes a post from the store by its ID.
	// Comments on the post are removed by the schema's cascade rules.
	// Returns ErrPostNotFound if the post does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new PostStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) PostStore
}
