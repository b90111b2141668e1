package service

import (
	"context"
	"testing"

	"github.com/devpost/blog-api/internal/domain"
	"github.com/devpost/blog-api/internal/mocks"
	"github.com/devpost/blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postServiceFixture wires a post service over in-memory stores with one
// category and two users pre-registered.
type postServiceFixture struct {
	svc           PostService
	postStore     *mocks.MockPostStore
	categoryStore *mocks.MockCategoryStore
	userStore     *mocks.MockUserStore
	category      *domain.Category
	author        *domain.User
	otherUser     *domain.User
}

func newPostServiceFixture(t *testing.T) *postServiceFixture {
	t.Helper()

	postStore := mocks.NewMockPostStore()
	categoryStore := mocks.NewMockCategoryStore()
	userStore := mocks.NewMockUserStore()

	category := &domain.Category{Title: "Tech"}
	require.NoError(t, categoryStore.Create(context.Background(), category))

	author := &domain.User{Name: "Alice", Email: "alice@example.com", Password: "p"}
	require.NoError(t, userStore.Create(context.Background(), author))

	other := &domain.User{Name: "Bob", Email: "bob@example.com", Password: "p"}
	require.NoError(t, userStore.Create(context.Background(), other))

	return &postServiceFixture{
		svc:           NewPostService(postStore, categoryStore, userStore, nil),
		postStore:     postStore,
		categoryStore: categoryStore,
		userStore:     userStore,
		category:      category,
		author:        author,
		otherUser:     other,
	}
}

func TestPostServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("stores a valid post", func(t *testing.T) {
		f := newPostServiceFixture(t)

		post, err := f.svc.CreatePost(context.Background(), "Hello", "World", "", f.category.ID, f.author.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), post.ID)
		assert.Equal(t, f.author.ID, post.UserID)
		assert.False(t, post.Date.IsZero())
	})

	t.Run("rejects a duplicate title and content pair", func(t *testing.T) {
		f := newPostServiceFixture(t)

		_, err := f.svc.CreatePost(context.Background(), "Hello", "World", "", f.category.ID, f.author.ID)
		require.NoError(t, err)

		_, err = f.svc.CreatePost(context.Background(), "Hello", "World", "", f.category.ID, f.otherUser.ID)
		assert.ErrorIs(t, err, store.ErrPostExists)
	})

	t.Run("allows the same title with different content", func(t *testing.T) {
		f := newPostServiceFixture(t)

		_, err := f.svc.CreatePost(context.Background(), "Hello", "World", "", f.category.ID, f.author.ID)
		require.NoError(t, err)

		_, err = f.svc.CreatePost(context.Background(), "Hello", "Different body", "", f.category.ID, f.author.ID)
		assert.NoError(t, err)

		_, err = f.svc.CreatePost(context.Background(), "Other title", "World", "", f.category.ID, f.author.ID)
		assert.NoError(t, err)

		assert.Len(t, f.postStore.Posts, 3)
	})

	t.Run("rejects a missing category", func(t *testing.T) {
		f := newPostServiceFixture(t)

		_, err := f.svc.CreatePost(context.Background(), "Hello", "World", "", 99, f.author.ID)
		assert.ErrorIs(t, err, store.ErrCategoryNotFound)
		assert.Empty(t, f.postStore.Posts)
	})

	t.Run("rejects a missing author", func(t *testing.T) {
		f := newPostServiceFixture(t)

		_, err := f.svc.CreatePost(context.Background(), "Hello", "World", "", f.category.ID, 99)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.Empty(t, f.postStore.Posts)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		f := newPostServiceFixture(t)

		_, err := f.svc.CreatePost(context.Background(), "", "World", "", f.category.ID, f.author.ID)
		assert.ErrorIs(t, err, domain.ErrPostTitleEmpty)

		_, err = f.svc.CreatePost(context.Background(), "Hello", "", "", f.category.ID, f.author.ID)
		assert.ErrorIs(t, err, domain.ErrPostContentEmpty)
	})
}

func TestPostServiceUpdate(t *testing.T) {
	t.Parallel()

	t.Run("author may update", func(t *testing.T) {
		f := newPostServiceFixture(t)

		created, err := f.svc.CreatePost(context.Background(), "Hello", "World", "", f.category.ID, f.author.ID)
		require.NoError(t, err)

		updated, err := f.svc.UpdatePost(context.Background(), created.ID, f.author.ID, "Hello v2", "World v2", "img.png", 0)
		require.NoError(t, err)
		assert.Equal(t, "Hello v2", updated.Title)
		assert.Equal(t, f.category.ID, updated.CategoryID, "zero category ID keeps the current category")
		assert.Equal(t, f.author.ID, updated.UserID, "ownership never changes on update")
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		f := newPostServiceFixture(t)

		created, err := f.svc.CreatePost(context.Background(), "Hello", "World", "", f.category.ID, f.author.ID)
		require.NoError(t, err)

		_, err = f.svc.UpdatePost(context.Background(), created.ID, f.otherUser.ID, "Hijack", "Attempt", "", 0)
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.Equal(t, "Hello", f.postStore.Posts[created.ID].Title, "post is untouched")
	})

	t.Run("update into a duplicate pair is tolerated", func(t *testing.T) {
		f := newPostServiceFixture(t)

		_, err := f.svc.CreatePost(context.Background(), "First", "Body", "", f.category.ID, f.author.ID)
		require.NoError(t, err)
		second, err := f.svc.CreatePost(context.Background(), "Second", "Body", "", f.category.ID, f.author.ID)
		require.NoError(t, err)

		// Only creation runs the duplicate-pair check.
		_, err = f.svc.UpdatePost(context.Background(), second.ID, f.author.ID, "First", "Body", "", 0)
		assert.NoError(t, err)
	})

	t.Run("moving to a missing category is refused", func(t *testing.T) {
		f := newPostServiceFixture(t)

		created, err := f.svc.CreatePost(context.Background(), "Hello", "World", "", f.category.ID, f.author.ID)
		require.NoError(t, err)

		_, err = f.svc.UpdatePost(context.Background(), created.ID, f.author.ID, "Hello", "World", "", 99)
		assert.ErrorIs(t, err, store.ErrCategoryNotFound)
	})

	t.Run("missing post yields not found", func(t *testing.T) {
		f := newPostServiceFixture(t)

		_, err := f.svc.UpdatePost(context.Background(), 99, f.author.ID, "T", "C", "", 0)
		assert.ErrorIs(t, err, store.ErrPostNotFound)
	})
}

func TestPostServiceDelete(t *testing.T) {
	t.Parallel()

	t.Run("author may delete", func(t *testing.T) {
		f := newPostServiceFixture(t)

		created, err := f.svc.CreatePost(context.Background(), "Hello", "World", "", f.category.ID, f.author.ID)
		require.NoError(t, err)

		require.NoError(t, f.svc.DeletePost(context.Background(), created.ID, f.author.ID))
		assert.Empty(t, f.postStore.Posts)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		f := newPostServiceFixture(t)

		created, err := f.svc.CreatePost(context.Background(), "Hello", "World", "", f.category.ID, f.author.ID)
		require.NoError(t, err)

		err = f.svc.DeletePost(context.Background(), created.ID, f.otherUser.ID)
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.Len(t, f.postStore.Posts, 1)
	})
}

func TestPostServiceListing(t *testing.T) {
	t.Parallel()

	t.Run("listing all posts when none exist is an empty page", func(t *testing.T) {
		f := newPostServiceFixture(t)

		page, err := f.svc.ListPosts(context.Background(), 0, 10)
		require.NoError(t, err)
		assert.True(t, page.IsEmpty())
	})

	t.Run("listing by a category with no posts is not found", func(t *testing.T) {
		f := newPostServiceFixture(t)

		_, err := f.svc.ListPostsByCategory(context.Background(), f.category.ID, 0, 10)
		assert.ErrorIs(t, err, store.ErrPostNotFound)
	})

	t.Run("listing by a user with no posts is not found", func(t *testing.T) {
		f := newPostServiceFixture(t)

		_, err := f.svc.ListPostsByUser(context.Background(), f.author.ID, 0, 10)
		assert.ErrorIs(t, err, store.ErrPostNotFound)
	})

	t.Run("scoped listings return only matching posts", func(t *testing.T) {
		f := newPostServiceFixture(t)

		second := &domain.Category{Title: "Travel"}
		require.NoError(t, f.categoryStore.Create(context.Background(), second))

		_, err := f.svc.CreatePost(context.Background(), "Tech post", "Body A", "", f.category.ID, f.author.ID)
		require.NoError(t, err)
		_, err = f.svc.CreatePost(context.Background(), "Travel post", "Body B", "", second.ID, f.otherUser.ID)
		require.NoError(t, err)

		byCategory, err := f.svc.ListPostsByCategory(context.Background(), f.category.ID, 0, 10)
		require.NoError(t, err)
		require.Len(t, byCategory.Content, 1)
		assert.Equal(t, "Tech post", byCategory.Content[0].Title)

		byUser, err := f.svc.ListPostsByUser(context.Background(), f.otherUser.ID, 0, 10)
		require.NoError(t, err)
		require.Len(t, byUser.Content, 1)
		assert.Equal(t, "Travel post", byUser.Content[0].Title)
	})
}

func TestPostServiceSearch(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)

	_, err := f.svc.CreatePost(context.Background(), "Spring tips", "Framework notes", "", f.category.ID, f.author.ID)
	require.NoError(t, err)
	_, err = f.svc.CreatePost(context.Background(), "Go tips", "Try Spring water", "", f.category.ID, f.author.ID)
	require.NoError(t, err)
	_, err = f.svc.CreatePost(context.Background(), "Unrelated", "Nothing here", "", f.category.ID, f.author.ID)
	require.NoError(t, err)

	t.Run("matches title or content substrings", func(t *testing.T) {
		page, err := f.svc.SearchPosts(context.Background(), "Spring", 0, 10)
		require.NoError(t, err)
		assert.Len(t, page.Content, 2)
	})

	t.Run("matching is case-sensitive", func(t *testing.T) {
		_, err := f.svc.SearchPosts(context.Background(), "spring", 0, 10)
		assert.ErrorIs(t, err, store.ErrPostNotFound)
	})

	t.Run("no matches is not found", func(t *testing.T) {
		_, err := f.svc.SearchPosts(context.Background(), "Quantum", 0, 10)
		assert.ErrorIs(t, err, store.ErrPostNotFound)
	})
}

func TestPostServiceGetDetail(t *testing.T) {
	t.Parallel()

	f := newPostServiceFixture(t)
	f.postStore.CategoryTitles[f.category.ID] = f.category.Title
	f.postStore.UserNames[f.author.ID] = f.author.Name

	created, err := f.svc.CreatePost(context.Background(), "Hello", "World", "", f.category.ID, f.author.ID)
	require.NoError(t, err)

	detail, err := f.svc.GetPostDetail(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", detail.Post.Title)
	assert.Equal(t, "Tech", detail.CategoryTitle)
	assert.Equal(t, "Alice", detail.UserName)

	_, err = f.svc.GetPostDetail(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrPostNotFound)
}
