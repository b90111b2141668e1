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

func TestCategoryServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("stores a valid category", func(t *testing.T) {
		categoryStore := mocks.NewMockCategoryStore()
		svc := NewCategoryService(categoryStore, nil)

		category, err := svc.CreateCategory(context.Background(), "Tech", "technology posts")
		require.NoError(t, err)
		assert.Equal(t, int64(1), category.ID)
	})

	t.Run("rejects a duplicate title", func(t *testing.T) {
		categoryStore := mocks.NewMockCategoryStore()
		svc := NewCategoryService(categoryStore, nil)

		_, err := svc.CreateCategory(context.Background(), "Tech", "")
		require.NoError(t, err)

		_, err = svc.CreateCategory(context.Background(), "Tech", "different description")
		assert.ErrorIs(t, err, store.ErrCategoryTitleExists)
		assert.Len(t, categoryStore.Categories, 1)
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		svc := NewCategoryService(mocks.NewMockCategoryStore(), nil)

		_, err := svc.CreateCategory(context.Background(), "", "desc")
		assert.ErrorIs(t, err, domain.ErrCategoryTitleEmpty)
	})
}

func TestCategoryServiceUpdate(t *testing.T) {
	t.Parallel()

	categoryStore := mocks.NewMockCategoryStore()
	svc := NewCategoryService(categoryStore, nil)

	created, err := svc.CreateCategory(context.Background(), "Tech", "old")
	require.NoError(t, err)

	updated, err := svc.UpdateCategory(context.Background(), created.ID, "Technology", "new")
	require.NoError(t, err)
	assert.Equal(t, "Technology", updated.Title)
	assert.Equal(t, "new", updated.Description)

	_, err = svc.UpdateCategory(context.Background(), 99, "X", "")
	assert.ErrorIs(t, err, store.ErrCategoryNotFound)
}

func TestCategoryServiceDelete(t *testing.T) {
	t.Parallel()

	categoryStore := mocks.NewMockCategoryStore()
	svc := NewCategoryService(categoryStore, nil)

	created, err := svc.CreateCategory(context.Background(), "Tech", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(context.Background(), created.ID))
	assert.ErrorIs(t, svc.DeleteCategory(context.Background(), created.ID), store.ErrCategoryNotFound)
}

func TestCategoryServiceList(t *testing.T) {
	t.Parallel()

	categoryStore := mocks.NewMockCategoryStore()
	svc := NewCategoryService(categoryStore, nil)

	page, err := svc.ListCategories(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.True(t, page.IsEmpty(), "empty category listing is not an error")
}
