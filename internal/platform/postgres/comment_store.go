package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/devpost/blog-api/internal/domain"
	"github.com/devpost/blog-api/internal/platform/logger"
	"github.com/devpost/blog-api/internal/store"
)

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the
// CommentStore interface. If logger is nil, a default logger will be used.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// Create implements store.CommentStore.Create
// Returns store.ErrInvalidEntity wrapped with context if the owning post or
// user does not exist (foreign key violation).
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO comments (content, user_id, post_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, comment.Content, comment.UserID, comment.PostID).
		Scan(&comment.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during comment creation",
				slog.Int64("post_id", comment.PostID),
				slog.Int64("user_id", comment.UserID))
		} else {
			log.Error("failed to create comment",
				slog.String("error", err.Error()),
				slog.Int64("post_id", comment.PostID))
		}
		return MapError(err)
	}

	log.Info("comment created successfully",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("post_id", comment.PostID))
	return nil
}

// GetByID implements store.CommentStore.GetByID
// Returns store.ErrCommentNotFound if the comment does not exist.
func (s *PostgresCommentStore) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, content, user_id, post_id
		FROM comments
		WHERE id = $1
	`

	var comment domain.Comment
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID,
		&comment.Content,
		&comment.UserID,
		&comment.PostID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("comment not found", slog.Int64("comment_id", id))
			return nil, store.ErrCommentNotFound
		}
		log.Error("failed to get comment by ID",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", id))
		return nil, MapError(err)
	}

	return &comment, nil
}

// ListByPost implements store.CommentStore.ListByPost
func (s *PostgresCommentStore) ListByPost(ctx context.Context, postID int64, page, size int) (store.Page[domain.Comment], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	page, size = store.NormalizePageRequest(page, size)

	var total int64
	countQuery := `SELECT count(*) FROM comments WHERE post_id = $1`
	if err := s.db.QueryRowContext(ctx, countQuery, postID).Scan(&total); err != nil {
		log.Error("failed to count comments", slog.String("error", err.Error()))
		return store.Page[domain.Comment]{}, MapError(err)
	}

	query := `
		SELECT id, content, user_id, post_id
		FROM comments
		WHERE post_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, postID, size, page*size)
	if err != nil {
		log.Error("failed to query comments", slog.String("error", err.Error()))
		return store.Page[domain.Comment]{}, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var comments []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(&comment.ID, &comment.Content, &comment.UserID, &comment.PostID); err != nil {
			log.Error("failed to scan comment row", slog.String("error", err.Error()))
			return store.Page[domain.Comment]{}, MapError(err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return store.Page[domain.Comment]{}, MapError(err)
	}

	return store.NewPage(comments, page, size, total), nil
}

// Update implements store.CommentStore.Update
// Returns store.ErrCommentNotFound if the comment does not exist.
// Only the content is mutable; ownership and post linkage are immutable.
func (s *PostgresCommentStore) Update(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", comment.ID))
		return err
	}

	query := `
		UPDATE comments
		SET content = $1
		WHERE id = $2
	`

	result, err := s.db.ExecContext(ctx, query, comment.Content, comment.ID)
	if err != nil {
		log.Error("failed to update comment",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", comment.ID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCommentNotFound); err != nil {
		return err
	}

	log.Info("comment updated successfully", slog.Int64("comment_id", comment.ID))
	return nil
}

// Delete implements store.CommentStore.Delete
// Returns store.ErrCommentNotFound if the comment does not exist.
func (s *PostgresCommentStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete comment",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCommentNotFound); err != nil {
		return err
	}

	log.Info("comment deleted successfully", slog.Int64("comment_id", id))
	return nil
}

// WithTx implements store.CommentStore.WithTx
func (s *PostgresCommentStore) WithTx(tx *sql.Tx) store.CommentStore {
	return &PostgresCommentStore{
		db:     tx,
		logger: s.logger,
	}
}
