package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devpost/blog-api/internal/api/shared"
	"github.com/devpost/blog-api/internal/domain"
	"github.com/devpost/blog-api/internal/mocks"
	"github.com/devpost/blog-api/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postAPIFixture wires the post routes behind a principal-injecting
// middleware, with one category and two users pre-created.
type postAPIFixture struct {
	router    *chi.Mux
	svc       service.PostService
	postStore *mocks.MockPostStore
	category  *domain.Category
	author    *domain.User
	otherUser *domain.User

	// principalID is injected into every request's context, standing in
	// for the authentication middleware.
	principalID int64
}

func newPostAPIFixture(t *testing.T) *postAPIFixture {
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

	f := &postAPIFixture{
		postStore:   postStore,
		svc:         service.NewPostService(postStore, categoryStore, userStore, nil),
		category:    category,
		author:      author,
		otherUser:   other,
		principalID: author.ID,
	}

	handler := NewPostHandler(f.svc)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := shared.WithPrincipalID(req.Context(), f.principalID)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Get("/api/posts", handler.ListPosts)
	r.Post("/api/posts", handler.CreatePost)
	r.Get("/api/posts/search", handler.SearchPosts)
	r.Get("/api/posts/{postID}", handler.GetPost)
	r.Put("/api/posts/{postID}", handler.UpdatePost)
	r.Delete("/api/posts/{postID}", handler.DeletePost)
	r.Get("/api/categories/{categoryID}/posts", handler.ListPostsByCategory)

	f.router = r
	return f
}

func (f *postAPIFixture) do(t *testing.T, method, target string, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestPostHandlerCreate(t *testing.T) {
	t.Parallel()

	f := newPostAPIFixture(t)

	payload := map[string]interface{}{
		"title":       "Hello",
		"content":     "World",
		"category_id": f.category.ID,
	}

	rec := f.do(t, http.MethodPost, "/api/posts", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp PostResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, f.author.ID, resp.UserID, "the principal becomes the author")

	// The identical pair again is a conflict.
	rec = f.do(t, http.MethodPost, "/api/posts", payload)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Missing category is not found.
	rec = f.do(t, http.MethodPost, "/api/posts", map[string]interface{}{
		"title":       "Another",
		"content":     "Body",
		"category_id": 99,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Missing fields fail request validation.
	rec = f.do(t, http.MethodPost, "/api/posts", map[string]interface{}{
		"content":     "Body",
		"category_id": f.category.ID,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostHandlerOwnership(t *testing.T) {
	t.Parallel()

	f := newPostAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/posts", map[string]interface{}{
		"title":       "Hello",
		"content":     "World",
		"category_id": f.category.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	update := map[string]interface{}{"title": "Hijack", "content": "Attempt"}

	// Another principal cannot update or delete the post.
	f.principalID = f.otherUser.ID
	rec = f.do(t, http.MethodPut, "/api/posts/1", update)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = f.do(t, http.MethodDelete, "/api/posts/1", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// The author can.
	f.principalID = f.author.ID
	rec = f.do(t, http.MethodPut, "/api/posts/1", update)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(t, http.MethodDelete, "/api/posts/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPostHandlerMissingPrincipal(t *testing.T) {
	t.Parallel()

	f := newPostAPIFixture(t)
	handler := NewPostHandler(f.svc)

	// Routes mounted without the principal-injecting middleware: reaching
	// an ownership-gated handler with no principal in context is an
	// internal failure, not an authentication one.
	r := chi.NewRouter()
	r.Post("/api/posts", handler.CreatePost)
	r.Put("/api/posts/{postID}", handler.UpdatePost)
	r.Delete("/api/posts/{postID}", handler.DeletePost)

	payload, err := json.Marshal(map[string]interface{}{
		"title":       "Hello",
		"content":     "World",
		"category_id": f.category.ID,
	})
	require.NoError(t, err)

	for _, tc := range []struct{ method, target string }{
		{http.MethodPost, "/api/posts"},
		{http.MethodPut, "/api/posts/1"},
		{http.MethodDelete, "/api/posts/1"},
	} {
		req := httptest.NewRequest(tc.method, tc.target, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code, "%s %s", tc.method, tc.target)
		assert.NotContains(t, rec.Body.String(), "Authentication required")
	}
}

func TestPostHandlerGet(t *testing.T) {
	t.Parallel()

	f := newPostAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/posts/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/posts/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostHandlerListing(t *testing.T) {
	t.Parallel()

	f := newPostAPIFixture(t)

	// Listing everything while empty is an empty page.
	rec := f.do(t, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"content":[]`)

	// Listing a category with no posts is not found.
	rec = f.do(t, http.MethodGet, "/api/categories/1/posts", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostHandlerSearch(t *testing.T) {
	t.Parallel()

	f := newPostAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/api/posts", map[string]interface{}{
		"title":       "Spring tips",
		"content":     "Notes",
		"category_id": f.category.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/posts/search?query=Spring", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Spring tips")

	rec = f.do(t, http.MethodGet, "/api/posts/search?query=spring", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, "search matching is case-sensitive")

	rec = f.do(t, http.MethodGet, "/api/posts/search", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "the keyword is required")
}
