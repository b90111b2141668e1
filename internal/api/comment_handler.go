package api

import (
	"net/http"

	"github.com/devpost/blog-api/internal/api/shared"
	"github.com/devpost/blog-api/internal/service"
	"github.com/go-playground/validator/v10"
)

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	commentService service.CommentService
	validator      *validator.Validate
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		validator:      validator.New(),
	}
}

// ListCommentsByPost handles GET /api/posts/{postID}/comments requests
func (h *CommentHandler) ListCommentsByPost(w http.ResponseWriter, r *http.Request) {
	postID, err := getPathID(r, "postID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, size := getPageParams(r)

	comments, err := h.commentService.ListCommentsByPost(r.Context(), postID, page, size)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list comments")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pageToResponse(comments, commentToResponse))
}

// GetComment handles GET /api/comments/{commentID} requests
func (h *CommentHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := getPathID(r, "commentID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	comment, err := h.commentService.GetComment(r.Context(), commentID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve comment")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, commentToResponse(comment))
}

// CreateComment handles POST /api/posts/{postID}/comments requests. The
// authenticated principal becomes the comment's author.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	principalID, postID, ok := handlePrincipalAndPathID(w, r, "postID")
	if !ok {
		return
	}

	var req CommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	comment, err := h.commentService.CreateComment(r.Context(), postID, principalID, req.Content)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create comment")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, commentToResponse(comment))
}

// UpdateComment handles PUT /api/comments/{commentID} requests
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	principalID, commentID, ok := handlePrincipalAndPathID(w, r, "commentID")
	if !ok {
		return
	}

	var req CommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	comment, err := h.commentService.UpdateComment(r.Context(), commentID, principalID, req.Content)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update comment")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, commentToResponse(comment))
}

// DeleteComment handles DELETE /api/comments/{commentID} requests
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	principalID, commentID, ok := handlePrincipalAndPathID(w, r, "commentID")
	if !ok {
		return
	}

	if err := h.commentService.DeleteComment(r.Context(), commentID, principalID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete comment")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"message": "Comment deleted successfully"})
}
