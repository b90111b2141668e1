package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/devpost/blog-api/internal/domain"
	"github.com/devpost/blog-api/internal/store"
)

// CategoryService provides operations over post categories. Categories are a
// shared taxonomy: any authenticated user may create, rename or delete any
// category, so no ownership check applies here.
type CategoryService interface {
	// ListCategories retrieves a page of categories. An empty result is not
	// an error.
	ListCategories(ctx context.Context, page, size int) (store.Page[domain.Category], error)

	// GetCategory retrieves a category by its ID.
	GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error)

	// CreateCategory creates a new category. The title must be non-empty and
	// not already taken; a clash yields store.ErrCategoryTitleExists.
	CreateCategory(ctx context.Context, title, description string) (*domain.Category, error)

	// UpdateCategory replaces a category's title and description.
	// No uniqueness re-check runs on update beyond the schema constraint.
	UpdateCategory(ctx context.Context, categoryID int64, title, description string) (*domain.Category, error)

	// DeleteCategory deletes a category by its ID. Deletion is refused by the
	// persistence layer while posts still reference the category.
	DeleteCategory(ctx context.Context, categoryID int64) error
}

// categoryServiceImpl implements the CategoryService interface.
type categoryServiceImpl struct {
	categoryStore store.CategoryStore
	logger        *slog.Logger
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryStore store.CategoryStore, logger *slog.Logger) CategoryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &categoryServiceImpl{
		categoryStore: categoryStore,
		logger:        logger.With(slog.String("component", "category_service")),
	}
}

// ListCategories implements CategoryService.ListCategories
func (s *categoryServiceImpl) ListCategories(ctx context.Context, page, size int) (store.Page[domain.Category], error) {
	categories, err := s.categoryStore.List(ctx, page, size)
	if err != nil {
		s.logger.Error("failed to list categories", "error", err)
		return store.Page[domain.Category]{}, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetCategory implements CategoryService.GetCategory
func (s *categoryServiceImpl) GetCategory(ctx context.Context, categoryID int64) (*domain.Category, error) {
	category, err := s.categoryStore.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			s.logger.Debug("category not found", "category_id", categoryID)
		} else {
			s.logger.Error("failed to retrieve category", "error", err, "category_id", categoryID)
		}
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}
	return category, nil
}

// CreateCategory implements CategoryService.CreateCategory
func (s *categoryServiceImpl) CreateCategory(ctx context.Context, title, description string) (*domain.Category, error) {
	category, err := domain.NewCategory(title, description)
	if err != nil {
		s.logger.Debug("invalid category data", "error", err, "title", title)
		return nil, err
	}

	exists, err := s.categoryStore.ExistsByTitle(ctx, title)
	if err != nil {
		s.logger.Error("failed to check category title existence", "error", err, "title", title)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	if exists {
		s.logger.Debug("attempted to create category with existing title", "title", title)
		return nil, store.ErrCategoryTitleExists
	}

	if err := s.categoryStore.Create(ctx, category); err != nil {
		if errors.Is(err, store.ErrCategoryTitleExists) {
			s.logger.Debug("category title taken concurrently", "title", title)
			return nil, err
		}
		s.logger.Error("failed to save category", "error", err, "title", title)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info("category created successfully", "category_id", category.ID, "title", title)
	return category, nil
}

// UpdateCategory implements CategoryService.UpdateCategory
func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, categoryID int64, title, description string) (*domain.Category, error) {
	category, err := s.categoryStore.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			s.logger.Debug("category not found for update", "category_id", categoryID)
		} else {
			s.logger.Error("failed to retrieve category for update", "error", err, "category_id", categoryID)
		}
		return nil, fmt.Errorf("failed to retrieve category for update: %w", err)
	}

	category.Title = title
	category.Description = description

	if err := s.categoryStore.Update(ctx, category); err != nil {
		s.logger.Error("failed to update category", "error", err, "category_id", categoryID)
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.logger.Info("category updated successfully", "category_id", categoryID)
	return category, nil
}

// DeleteCategory implements CategoryService.DeleteCategory
func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, categoryID int64) error {
	if err := s.categoryStore.Delete(ctx, categoryID); err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			s.logger.Debug("category not found for delete", "category_id", categoryID)
		} else {
			s.logger.Error("failed to delete category", "error", err, "category_id", categoryID)
		}
		return err
	}

	s.logger.Info("category deleted successfully", "category_id", categoryID)
	return nil
}
