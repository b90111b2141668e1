package mocks

import (
	"context"
	"database/sql"
	"sort"
	"strings"

	"github.com/devpost/blog-api/internal/domain"
	"github.com/devpost/blog-api/internal/store"
)

// MockPostStore implements store.PostStore for testing
type MockPostStore struct {
	// Function fields for customizable behavior
	CreateFn                  func(ctx context.Context, post *domain.Post) error
	GetByIDFn                 func(ctx context.Context, id int64) (*domain.Post, error)
	GetDetailByIDFn           func(ctx context.Context, id int64) (*store.PostDetail, error)
	ExistsByTitleAndContentFn func(ctx context.Context, title, content string) (bool, error)
	ListFn                    func(ctx context.Context, page, size int) (store.Page[domain.Post], error)
	ListByCategoryFn          func(ctx context.Context, categoryID int64, page, size int) (store.Page[domain.Post], error)
	ListByUserFn              func(ctx context.Context, userID int64, page, size int) (store.Page[domain.Post], error)
	SearchFn                  func(ctx context.Context, keyword string, page, size int) (store.Page[domain.Post], error)
	UpdateFn                  func(ctx context.Context, post *domain.Post) error
	DeleteFn                  func(ctx context.Context, id int64) error

	// Data for default implementation
	Posts  map[int64]*domain.Post
	NextID int64

	// Joined names returned by the default GetDetailByID
	CategoryTitles map[int64]string
	UserNames      map[int64]string
}

// NewMockPostStore creates a new mock store with initialized defaults
func NewMockPostStore() *MockPostStore {
	return &MockPostStore{
		Posts:          make(map[int64]*domain.Post),
		NextID:         1,
		CategoryTitles: make(map[int64]string),
		UserNames:      make(map[int64]string),
	}
}

// Create implements the PostStore interface
func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}

	post.ID = m.NextID
	m.NextID++
	m.Posts[post.ID] = post
	return nil
}

// GetByID implements the PostStore interface
func (m *MockPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	post, exists := m.Posts[id]
	if !exists {
		return nil, store.ErrPostNotFound
	}
	return post, nil
}

// GetDetailByID implements the PostStore interface
func (m *MockPostStore) GetDetailByID(ctx context.Context, id int64) (*store.PostDetail, error) {
	if m.GetDetailByIDFn != nil {
		return m.GetDetailByIDFn(ctx, id)
	}

	post, exists := m.Posts[id]
	if !exists {
		return nil, store.ErrPostNotFound
	}
	return &store.PostDetail{
		Post:          *post,
		CategoryTitle: m.CategoryTitles[post.CategoryID],
		UserName:      m.UserNames[post.UserID],
	}, nil
}

// ExistsByTitleAndContent implements the PostStore interface. Matching
// follows the duplicate-pair rule: both fields must match the same post.
func (m *MockPostStore) ExistsByTitleAndContent(ctx context.Context, title, content string) (bool, error) {
	if m.ExistsByTitleAndContentFn != nil {
		return m.ExistsByTitleAndContentFn(ctx, title, content)
	}

	for _, post := range m.Posts {
		if post.Title == title && post.Content == content {
			return true, nil
		}
	}
	return false, nil
}

// List implements the PostStore interface
func (m *MockPostStore) List(ctx context.Context, page, size int) (store.Page[domain.Post], error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, page, size)
	}
	return m.listMatching(page, size, func(*domain.Post) bool { return true }), nil
}

// ListByCategory implements the PostStore interface
func (m *MockPostStore) ListByCategory(ctx context.Context, categoryID int64, page, size int) (store.Page[domain.Post], error) {
	if m.ListByCategoryFn != nil {
		return m.ListByCategoryFn(ctx, categoryID, page, size)
	}
	return m.listMatching(page, size, func(p *domain.Post) bool { return p.CategoryID == categoryID }), nil
}

// ListByUser implements the PostStore interface
func (m *MockPostStore) ListByUser(ctx context.Context, userID int64, page, size int) (store.Page[domain.Post], error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID, page, size)
	}
	return m.listMatching(page, size, func(p *domain.Post) bool { return p.UserID == userID }), nil
}

// Search implements the PostStore interface. Matching is a case-sensitive
// substring check over title and content, like the SQL implementation.
func (m *MockPostStore) Search(ctx context.Context, keyword string, page, size int) (store.Page[domain.Post], error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, keyword, page, size)
	}
	return m.listMatching(page, size, func(p *domain.Post) bool {
		return strings.Contains(p.Title, keyword) || strings.Contains(p.Content, keyword)
	}), nil
}

// Update implements the PostStore interface
func (m *MockPostStore) Update(ctx context.Context, post *domain.Post) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, post)
	}

	if _, exists := m.Posts[post.ID]; !exists {
		return store.ErrPostNotFound
	}
	m.Posts[post.ID] = post
	return nil
}

// Delete implements the PostStore interface
func (m *MockPostStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Posts[id]; !exists {
		return store.ErrPostNotFound
	}
	delete(m.Posts, id)
	return nil
}

// WithTx implements the PostStore interface. The mock has no transaction
// semantics, so it returns itself.
func (m *MockPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return m
}

// listMatching filters, orders and pages the in-memory posts.
func (m *MockPostStore) listMatching(page, size int, match func(*domain.Post) bool) store.Page[domain.Post] {
	page, size = store.NormalizePageRequest(page, size)
	all := make([]domain.Post, 0, len(m.Posts))
	for _, post := range m.Posts {
		if match(post) {
			all = append(all, *post)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return slicePage(all, page, size)
}

// Compile-time check that MockPostStore satisfies the interface
var _ store.PostStore = (*MockPostStore)(nil)
