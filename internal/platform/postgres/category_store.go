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

// PostgresCategoryStore implements the store.CategoryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCategoryStore creates a new PostgreSQL implementation of the
// CategoryStore interface. If logger is nil, a default logger will be used.
func NewPostgresCategoryStore(db store.DBTX, logger *slog.Logger) *PostgresCategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCategoryStore{
		db:     db,
		logger: logger.With(slog.String("component", "category_store")),
	}
}

// Ensure PostgresCategoryStore implements store.CategoryStore interface
var _ store.CategoryStore = (*PostgresCategoryStore)(nil)

// Create implements store.CategoryStore.Create
// Returns store.ErrCategoryTitleExists if the title is already taken.
func (s *PostgresCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO categories (title, description)
		VALUES ($1, $2)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, category.Title, category.Description).
		Scan(&category.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("attempted to create category with existing title",
				slog.String("title", category.Title))
			return store.ErrCategoryTitleExists
		}
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("title", category.Title))
		return MapError(err)
	}

	log.Info("category created successfully",
		slog.Int64("category_id", category.ID),
		slog.String("title", category.Title))
	return nil
}

// GetByID implements store.CategoryStore.GetByID
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *PostgresCategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description
		FROM categories
		WHERE id = $1
	`

	var category domain.Category
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&category.ID,
		&category.Title,
		&category.Description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("category not found", slog.Int64("category_id", id))
			return nil, store.ErrCategoryNotFound
		}
		log.Error("failed to get category by ID",
			slog.String("error", err.Error()),
			slog.Int64("category_id", id))
		return nil, MapError(err)
	}

	return &category, nil
}

// ExistsByTitle implements store.CategoryStore.ExistsByTitle
func (s *PostgresCategoryStore) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE title = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, title).Scan(&exists); err != nil {
		log.Error("failed to check category existence by title",
			slog.String("error", err.Error()),
			slog.String("title", title))
		return false, MapError(err)
	}

	return exists, nil
}

// List implements store.CategoryStore.List
func (s *PostgresCategoryStore) List(ctx context.Context, page, size int) (store.Page[domain.Category], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	page, size = store.NormalizePageRequest(page, size)

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM categories`).Scan(&total); err != nil {
		log.Error("failed to count categories", slog.String("error", err.Error()))
		return store.Page[domain.Category]{}, MapError(err)
	}

	query := `
		SELECT id, title, description
		FROM categories
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, size, page*size)
	if err != nil {
		log.Error("failed to query categories", slog.String("error", err.Error()))
		return store.Page[domain.Category]{}, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Title, &category.Description); err != nil {
			log.Error("failed to scan category row", slog.String("error", err.Error()))
			return store.Page[domain.Category]{}, MapError(err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return store.Page[domain.Category]{}, MapError(err)
	}

	return store.NewPage(categories, page, size, total), nil
}

// Update implements store.CategoryStore.Update
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *PostgresCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("category_id", category.ID))
		return err
	}

	query := `
		UPDATE categories
		SET title = $1, description = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, category.Title, category.Description, category.ID)
	if err != nil {
		log.Error("failed to update category",
			slog.String("error", err.Error()),
			slog.Int64("category_id", category.ID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCategoryNotFound); err != nil {
		return err
	}

	log.Info("category updated successfully", slog.Int64("category_id", category.ID))
	return nil
}

// Delete implements store.CategoryStore.Delete
// Returns store.ErrCategoryNotFound if the category does not exist.
// Deleting a category still referenced by posts surfaces as a foreign key
// violation mapped to store.ErrInvalidEntity.
func (s *PostgresCategoryStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete category",
			slog.String("error", err.Error()),
			slog.Int64("category_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrCategoryNotFound); err != nil {
		return err
	}

	log.Info("category deleted successfully", slog.Int64("category_id", id))
	return nil
}

// WithTx implements store.CategoryStore.WithTx
func (s *PostgresCategoryStore) WithTx(tx *sql.Tx) store.CategoryStore {
	return &PostgresCategoryStore{
		db:     tx,
		logger: s.logger,
	}
}
