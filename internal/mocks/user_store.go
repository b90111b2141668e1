package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/devpost/blog-api/internal/domain"
	"github.com/devpost/blog-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByIDFn       func(ctx context.Context, id int64) (*domain.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmailFn func(ctx context.Context, email string) (bool, error)
	ListFn          func(ctx context.Context, page, size int) (store.Page[domain.User], error)
	UpdateFn        func(ctx context.Context, user *domain.User) error
	DeleteFn        func(ctx context.Context, id int64) error

	// Data for default implementation
	Users  map[int64]*domain.User
	NextID int64
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users:  make(map[int64]*domain.User),
		NextID: 1,
	}
}

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	for _, existing := range m.Users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	user.ID = m.NextID
	m.NextID++
	m.Users[user.ID] = user
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	user, exists := m.Users[id]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	for _, user := range m.Users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// ExistsByEmail implements the UserStore interface
func (m *MockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFn != nil {
		return m.ExistsByEmailFn(ctx, email)
	}

	for _, user := range m.Users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context, page, size int) (store.Page[domain.User], error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page, size)
	}

	page, size = store.NormalizePageRequest(page, size)
	all := make([]domain.User, 0, len(m.Users))
	for _, user := range m.Users {
		all = append(all, *user)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return slicePage(all, page, size), nil
}

// Update implements the UserStore interface
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	if _, exists := m.Users[user.ID]; !exists {
		return store.ErrUserNotFound
	}
	m.Users[user.ID] = user
	return nil
}

// Delete implements the UserStore interface
func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Users[id]; !exists {
		return store.ErrUserNotFound
	}
	delete(m.Users, id)
	return nil
}

// WithTx implements the UserStore interface. The mock has no transaction
// semantics, so it returns itself.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// slicePage cuts the page window out of an already ordered slice and wraps
// it with paging metadata, mirroring what the SQL stores do with LIMIT and
// OFFSET.
func slicePage[T any](all []T, page, size int) store.Page[T] {
	total := int64(len(all))
	start := page * size
	if start > len(all) {
		start = len(all)
	}
	end := start + size
	if end > len(all) {
		end = len(all)
	}
	return store.NewPage(all[start:end], page, size, total)
}

// Compile-time check that MockUserStore satisfies the interface
var _ store.UserStore = (*MockUserStore)(nil)
