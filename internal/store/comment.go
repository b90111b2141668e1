package store

import (
	"context"
	"database/sql"

	"github.com/devpost/blog-api/internal/domain"
)

// CommentStore defines the interface for comment data persistence.
type CommentStore interface {
	// Create saves a new comment to the store and assigns its ID.
	Create(ctx context.Context, comment *domain.Comment) error

	// GetByID retrieves a comment by its unique ID.
	// Returns ErrCommentNotFound if the comment does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Comment, error)

	// ListByPost retrieves a page of comments on the given post ordered by
	// ascending ID.
	ListByPost(ctx context.Context, postID int64, page, size int) (Page[domain.Comment], error)

	// Update modifies an existing comment's details.
	// Returns ErrCommentNotFound if the comment does not exist.
	Update(ctx context.Context, comment *domain.Comment) error

	// Delete removes a comment from the store by its ID.
	// Returns ErrCommentNotFound if the comment does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new CommentStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CommentStore
}
