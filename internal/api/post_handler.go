package api

import (
	"net/http"

	"github.com/devpost/blog-api/internal/api/shared"
	"github.com/devpost/blog-api/internal/service"
	"github.com/go-playground/validator/v10"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postService service.PostService
	validator   *validator.Validate
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
		validator:   validator.New(),
	}
}

// ListPosts handles GET /api/posts requests
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	page, size := getPageParams(r)

	posts, err := h.postService.ListPosts(r.Context(), page, size)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list posts")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pageToResponse(posts, postToResponse))
}

// ListPostsByCategory handles GET /api/categories/{categoryID}/posts requests
func (h *PostHandler) ListPostsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := getPathID(r, "categoryID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, size := getPageParams(r)

	posts, err := h.postService.ListPostsByCategory(r.Context(), categoryID, page, size)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list posts by category")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pageToResponse(posts, postToResponse))
}

// ListPostsByUser handles GET /api/users/{userID}/posts requests
func (h *PostHandler) ListPostsByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathID(r, "userID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, size := getPageParams(r)

	posts, err := h.postService.ListPostsByUser(r.Context(), userID, page, size)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list posts by user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pageToResponse(posts, postToResponse))
}

// SearchPosts handles GET /api/posts/search requests. The keyword travels
// in the "query" query parameter.
func (h *PostHandler) SearchPosts(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("query")
	if keyword == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Search query is required")
		return
	}

	page, size := getPageParams(r)

	posts, err := h.postService.SearchPosts(r.Context(), keyword, page, size)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to search posts")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pageToResponse(posts, postToResponse))
}

// GetPost handles GET /api/posts/{postID} requests
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := getPathID(r, "postID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	post, err := h.postService.GetPost(r.Context(), postID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve post")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(post))
}

// CreatePost handles POST /api/posts requests. The authenticated principal
// becomes the post's author.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	principalID, ok := getPrincipalIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, service.ErrNoPrincipal, "")
		return
	}

	var req CreatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	post, err := h.postService.CreatePost(r.Context(), req.Title, req.Content, req.Image, req.CategoryID, principalID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create post")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, postToResponse(post))
}

// UpdatePost handles PUT /api/posts/{postID} requests
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	principalID, postID, ok := handlePrincipalAndPathID(w, r, "postID")
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	post, err := h.postService.UpdatePost(r.Context(), postID, principalID, req.Title, req.Content, req.Image, req.CategoryID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update post")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, postToResponse(post))
}

// DeletePost handles DELETE /api/posts/{postID} requests
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	principalID, postID, ok := handlePrincipalAndPathID(w, r, "postID")
	if !ok {
		return
	}

	if err := h.postService.DeletePost(r.Context(), postID, principalID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete post")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}
