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

// commentServiceFixture wires a comment service over in-memory stores with
// one post pre-created.
type commentServiceFixture struct {
	svc          CommentService
	commentStore *mocks.MockCommentStore
	postStore    *mocks.MockPostStore
	post         *domain.Post
}

func newCommentServiceFixture(t *testing.T) *commentServiceFixture {
	t.Helper()

	commentStore := mocks.NewMockCommentStore()
	postStore := mocks.NewMockPostStore()

	post := &domain.Post{Title: "Hello", Content: "World", CategoryID: 1, UserID: 1}
	require.NoError(t, postStore.Create(context.Background(), post))

	return &commentServiceFixture{
		svc:          NewCommentService(commentStore, postStore, nil),
		commentStore: commentStore,
		postStore:    postStore,
		post:         post,
	}
}

func TestCommentServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("stores a valid comment", func(t *testing.T) {
		f := newCommentServiceFixture(t)

		comment, err := f.svc.CreateComment(context.Background(), f.post.ID, 7, "nice post")
		require.NoError(t, err)
		assert.Equal(t, int64(1), comment.ID)
		assert.Equal(t, int64(7), comment.UserID)
		assert.Equal(t, f.post.ID, comment.PostID)
	})

	t.Run("rejects blank content", func(t *testing.T) {
		f := newCommentServiceFixture(t)

		_, err := f.svc.CreateComment(context.Background(), f.post.ID, 7, "   ")
		assert.ErrorIs(t, err, domain.ErrCommentContentBlank)
		assert.Empty(t, f.commentStore.Comments)
	})

	t.Run("rejects a missing post", func(t *testing.T) {
		f := newCommentServiceFixture(t)

		_, err := f.svc.CreateComment(context.Background(), 99, 7, "orphan")
		assert.ErrorIs(t, err, store.ErrPostNotFound)
		assert.Empty(t, f.commentStore.Comments)
	})
}

func TestCommentServiceUpdate(t *testing.T) {
	t.Parallel()

	t.Run("author may update", func(t *testing.T) {
		f := newCommentServiceFixture(t)

		created, err := f.svc.CreateComment(context.Background(), f.post.ID, 7, "first draft")
		require.NoError(t, err)

		updated, err := f.svc.UpdateComment(context.Background(), created.ID, 7, "final draft")
		require.NoError(t, err)
		assert.Equal(t, "final draft", updated.Content)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		f := newCommentServiceFixture(t)

		created, err := f.svc.CreateComment(context.Background(), f.post.ID, 7, "mine")
		require.NoError(t, err)

		_, err = f.svc.UpdateComment(context.Background(), created.ID, 8, "theirs")
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.Equal(t, "mine", f.commentStore.Comments[created.ID].Content)
	})

	t.Run("blank replacement content is refused", func(t *testing.T) {
		f := newCommentServiceFixture(t)

		created, err := f.svc.CreateComment(context.Background(), f.post.ID, 7, "mine")
		require.NoError(t, err)

		_, err = f.svc.UpdateComment(context.Background(), created.ID, 7, " ")
		assert.ErrorIs(t, err, domain.ErrCommentContentBlank)
	})
}

func TestCommentServiceDelete(t *testing.T) {
	t.Parallel()

	t.Run("author may delete", func(t *testing.T) {
		f := newCommentServiceFixture(t)

		created, err := f.svc.CreateComment(context.Background(), f.post.ID, 7, "mine")
		require.NoError(t, err)

		require.NoError(t, f.svc.DeleteComment(context.Background(), created.ID, 7))
		assert.Empty(t, f.commentStore.Comments)
	})

	t.Run("non-owner is refused", func(t *testing.T) {
		f := newCommentServiceFixture(t)

		created, err := f.svc.CreateComment(context.Background(), f.post.ID, 7, "mine")
		require.NoError(t, err)

		err = f.svc.DeleteComment(context.Background(), created.ID, 8)
		assert.ErrorIs(t, err, ErrNotOwner)
		assert.Len(t, f.commentStore.Comments, 1)
	})
}

func TestCommentServiceListByPost(t *testing.T) {
	t.Parallel()

	t.Run("no comments on the post is not found", func(t *testing.T) {
		f := newCommentServiceFixture(t)

		_, err := f.svc.ListCommentsByPost(context.Background(), f.post.ID, 0, 10)
		assert.ErrorIs(t, err, store.ErrCommentNotFound)
	})

	t.Run("returns only the post's comments", func(t *testing.T) {
		f := newCommentServiceFixture(t)

		other := &domain.Post{Title: "Other", Content: "Post", CategoryID: 1, UserID: 1}
		require.NoError(t, f.postStore.Create(context.Background(), other))

		_, err := f.svc.CreateComment(context.Background(), f.post.ID, 7, "on first")
		require.NoError(t, err)
		_, err = f.svc.CreateComment(context.Background(), other.ID, 7, "on other")
		require.NoError(t, err)

		page, err := f.svc.ListCommentsByPost(context.Background(), f.post.ID, 0, 10)
		require.NoError(t, err)
		require.Len(t, page.Content, 1)
		assert.Equal(t, "on first", page.Content[0].Content)
	})
}
