package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/devpost/blog-api/internal/domain"
	"github.com/devpost/blog-api/internal/store"
)

// MockCategoryStore implements store.CategoryStore for testing
type MockCategoryStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, category *domain.Category) error
	GetByIDFn       func(ctx context.Context, id int64) (*domain.Category, error)
	ExistsByTitleFn func(ctx context.Context, title string) (bool, error)
	ListFn          func(ctx context.Context, page, size int) (store.Page[domain.Category], error)
	UpdateFn        func(ctx context.Context, category *domain.Category) error
	DeleteFn        func(ctx context.Context, id int64) error

	// Data for default implementation
	Categories map[int64]*domain.Category
	NextID     int64
}

// NewMockCategoryStore creates a new mock store with initialized defaults
func NewMockCategoryStore() *MockCategoryStore {
	return &MockCategoryStore{
		Categories: make(map[int64]*domain.Category),
		NextID:     1,
	}
}

// Create implements the CategoryStore interface
func (m *MockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, category)
	}

	for _, existing := range m.Categories {
		if existing.Title == category.Title {
			return store.ErrCategoryTitleExists
		}
	}

	category.ID = m.NextID
	m.NextID++
	m.Categories[category.ID] = category
	return nil
}

// GetByID implements the CategoryStore interface
func (m *MockCategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	category, exists := m.Categories[id]
	if !exists {
		return nil, store.ErrCategoryNotFound
	}
	return category, nil
}

// ExistsByTitle implements the CategoryStore interface
func (m *MockCategoryStore) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	if m.ExistsByTitleFn != nil {
		return m.ExistsByTitleFn(ctx, title)
	}

	for _, category := range m.Categories {
		if category.Title == title {
			return true, nil
		}
	}
	return false, nil
}

// List implements the CategoryStore interface
func (m *MockCategoryStore) List(ctx context.Context, page, size int) (store.Page[domain.Category], error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page, size)
	}

	page, size = store.NormalizePageRequest(page, size)
	all := make([]domain.Category, 0, len(m.Categories))
	for _, category := range m.Categories {
		all = append(all, *category)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return slicePage(all, page, size), nil
}

// Update implements the CategoryStore interface
func (m *MockCategoryStore) Update(ctx context.Context, category *domain.Category) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, category)
	}

	if _, exists := m.Categories[category.ID]; !exists {
		return store.ErrCategoryNotFound
	}
	m.Categories[category.ID] = category
	return nil
}

// Delete implements the CategoryStore interface
func (m *MockCategoryStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Categories[id]; !exists {
		return store.ErrCategoryNotFound
	}
	delete(m.Categories, id)
	return nil
}

// WithTx implements the CategoryStore interface. The mock has no
// transaction semantics, so it returns itself.
func (m *MockCategoryStore) WithTx(tx *sql.Tx) store.CategoryStore {
	return m
}

// Compile-time check that MockCategoryStore satisfies the interface
var _ store.CategoryStore = (*MockCategoryStore)(nil)
