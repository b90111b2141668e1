package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/devpost/blog-api/internal/domain"
	"github.com/devpost/blog-api/internal/platform/logger"
	"github.com/devpost/blog-api/internal/store"
)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the
// PostStore interface. If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// Create implements store.PostStore.Create
// Returns store.ErrInvalidEntity wrapped with context if the owning
// category or user does not exist (foreign key violation).
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO posts (title, content, image, date, category_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		post.Title,
		post.Content,
		nullableString(post.Image),
		post.Date,
		post.CategoryID,
		post.UserID,
	).Scan(&post.ID)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during post creation",
				slog.Int64("category_id", post.CategoryID),
				slog.Int64("user_id", post.UserID))
		} else {
			log.Error("failed to create post",
				slog.String("error", err.Error()),
				slog.String("title", post.Title))
		}
		return MapError(err)
	}

	log.Info("post created successfully",
		slog.Int64("post_id", post.ID),
		slog.Int64("user_id", post.UserID))
	return nil
}

// GetByID implements store.PostStore.GetByID
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, COALESCE(image, ''), date, category_id, user_id
		FROM posts
		WHERE id = $1
	`

	var post domain.Post
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Image,
		&post.Date,
		&post.CategoryID,
		&post.UserID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.Int64("post_id", id))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, MapError(err)
	}

	return &post, nil
}

// GetDetailByID implements store.PostStore.GetDetailByID
// It joins the post with its category title and author name, the shape the
// report renderers consume. Returns store.ErrPostNotFound on a lookup miss.
func (s *PostgresPostStore) GetDetailByID(ctx context.Context, id int64) (*store.PostDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT p.id, p.title, p.content, COALESCE(p.image, ''), p.date,
		       p.category_id, p.user_id, c.title, u.name
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1
	`

	var detail store.PostDetail
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&detail.Post.ID,
		&detail.Post.Title,
		&detail.Post.Content,
		&detail.Post.Image,
		&detail.Post.Date,
		&detail.Post.CategoryID,
		&detail.Post.UserID,
		&detail.CategoryTitle,
		&detail.UserName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post detail not found", slog.Int64("post_id", id))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post detail",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, MapError(err)
	}

	return &detail, nil
}

// ExistsByTitleAndContent implements store.PostStore.ExistsByTitleAndContent
// Only a post matching both fields counts as a duplicate.
func (s *PostgresPostStore) ExistsByTitleAndContent(ctx context.Context, title, content string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT EXISTS (SELECT 1 FROM posts WHERE title = $1 AND content = $2)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, title, content).Scan(&exists); err != nil {
		log.Error("failed to check post existence by title and content",
			slog.String("error", err.Error()),
			slog.String("title", title))
		return false, MapError(err)
	}

	return exists, nil
}

// List implements store.PostStore.List
func (s *PostgresPostStore) List(ctx context.Context, page, size int) (store.Page[domain.Post], error) {
	return s.listPage(ctx, page, size, "", 0, "")
}

// ListByCategory implements store.PostStore.ListByCategory
func (s *PostgresPostStore) ListByCategory(ctx context.Context, categoryID int64, page, size int) (store.Page[domain.Post], error) {
	return s.listPage(ctx, page, size, "category_id", categoryID, "")
}

// ListByUser implements store.PostStore.ListByUser
func (s *PostgresPostStore) ListByUser(ctx context.Context, userID int64, page, size int) (store.Page[domain.Post], error) {
	return s.listPage(ctx, page, size, "user_id", userID, "")
}

// Search implements store.PostStore.Search
// Matching is a case-sensitive substring test against title OR content;
// strpos avoids the LIKE metacharacter pitfalls of %-patterns.
func (s *PostgresPostStore) Search(ctx context.Context, keyword string, page, size int) (store.Page[domain.Post], error) {
	return s.listPage(ctx, page, size, "", 0, keyword)
}

// listPage runs the shared count-then-select pagination flow. Exactly one of
// fkColumn or keyword may be set; both empty yields the unscoped listing.
func (s *PostgresPostStore) listPage(
	ctx context.Context,
	page, size int,
	fkColumn string,
	fkValue int64,
	keyword string,
) (store.Page[domain.Post], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	page, size = store.NormalizePageRequest(page, size)

	where := ""
	args := []any{}
	switch {
	case fkColumn == "category_id":
		where = "WHERE category_id = $1"
		args = append(args, fkValue)
	case fkColumn == "user_id":
		where = "WHERE user_id = $1"
		args = append(args, fkValue)
	case keyword != "":
		where = "WHERE strpos(title, $1) > 0 OR strpos(content, $1) > 0"
		args = append(args, keyword)
	}

	var total int64
	countQuery := `SELECT count(*) FROM posts ` + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count posts", slog.String("error", err.Error()))
		return store.Page[domain.Post]{}, MapError(err)
	}

	limitPos := len(args) + 1
	query := fmt.Sprintf(`
		SELECT id, title, content, COALESCE(image, ''), date, category_id, user_id
		FROM posts %s
		ORDER BY id
		LIMIT $%d OFFSET $%d`, where, limitPos, limitPos+1)
	args = append(args, size, page*size)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query posts", slog.String("error", err.Error()))
		return store.Page[domain.Post]{}, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.Image,
			&post.Date,
			&post.CategoryID,
			&post.UserID,
		)
		if err != nil {
			log.Error("failed to scan post row", slog.String("error", err.Error()))
			return store.Page[domain.Post]{}, MapError(err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return store.Page[domain.Post]{}, MapError(err)
	}

	return store.NewPage(posts, page, size, total), nil
}

// Update implements store.PostStore.Update
// Returns store.ErrPostNotFound if the post does not exist.
// Ownership is immutable: user_id is never part of the update set.
func (s *PostgresPostStore) Update(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("post_id", post.ID))
		return err
	}

	query := `
		UPDATE posts
		SET title = $1, content = $2, image = $3, date = $4, category_id = $5
		WHERE id = $6
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		post.Title,
		post.Content,
		nullableString(post.Image),
		post.Date,
		post.CategoryID,
		post.ID,
	)
	if err != nil {
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", post.ID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrPostNotFound); err != nil {
		return err
	}

	log.Info("post updated successfully", slog.Int64("post_id", post.ID))
	return nil
}

// Delete implements store.PostStore.Delete
// Comments on the post are removed by ON DELETE CASCADE.
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrPostNotFound); err != nil {
		return err
	}

	log.Info("post deleted successfully", slog.Int64("post_id", id))
	return nil
}

// WithTx implements store.PostStore.WithTx
func (s *PostgresPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return &PostgresPostStore{
		db:     tx,
		logger: s.logger,
	}
}

// nullableString maps an empty string to SQL NULL for optional columns.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
