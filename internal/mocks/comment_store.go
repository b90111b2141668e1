package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/devpost/blog-api/internal/domain"
	"github.com/devpost/blog-api/internal/store"
)

// MockCommentStore implements store.CommentStore for testing
type MockCommentStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, comment *domain.Comment) error
	GetByIDFn    func(ctx context.Context, id int64) (*domain.Comment, error)
	ListByPostFn func(ctx context.Context, postID int64, page, size int) (store.Page[domain.Comment], error)
	UpdateFn     func(ctx context.Context, comment *domain.Comment) error
	DeleteFn     func(ctx context.Context, id int64) error

	// Data for default implementation
	Comments map[int64]*domain.Comment
	NextID   int64
}

// NewMockCommentStore creates a new mock store with initialized defaults
func NewMockCommentStore() *MockCommentStore {
	return &MockCommentStore{
		Comments: make(map[int64]*domain.Comment),
		NextID:   1,
	}
}

// Create implements the CommentStore interface
func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}

	comment.ID = m.NextID
	m.NextID++
	m.Comments[comment.ID] = comment
	return nil
}

// GetByID implements the CommentStore interface
func (m *MockCommentStore) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	comment, exists := m.Comments[id]
	if !exists {
		return nil, store.ErrCommentNotFound
	}
	return comment, nil
}

// ListByPost implements the CommentStore interface
func (m *MockCommentStore) ListByPost(ctx context.Context, postID int64, page, size int) (store.Page[domain.Comment], error) {
	if m.ListByPostFn != nil {
		return m.ListByPostFn(ctx, postID, page, size)
	}

	page, size = store.NormalizePageRequest(page, size)
	all := make([]domain.Comment, 0, len(m.Comments))
	for _, comment := range m.Comments {
		if comment.PostID == postID {
			all = append(all, *comment)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return slicePage(all, page, size), nil
}

// Update implements the CommentStore interface
func (m *MockCommentStore) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, comment)
	}

	if _, exists := m.Comments[comment.ID]; !exists {
		return store.ErrCommentNotFound
	}
	m.Comments[comment.ID] = comment
	return nil
}

// Delete implements the CommentStore interface
func (m *MockCommentStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Comments[id]; !exists {
		return store.ErrCommentNotFound
	}
	delete(m.Comments, id)
	return nil
}

// WithTx implements the CommentStore interface. The mock has no
// transaction semantics, so it returns itself.
func (m *MockCommentStore) WithTx(tx *sql.Tx) store.CommentStore {
	return m
}

// Compile-time check that MockCommentStore satisfies the interface
var _ store.CommentStore = (*MockCommentStore)(nil)
