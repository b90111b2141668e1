package api

import (
	"time"

	"github.com/devpost/blog-api/internal/domain"
	"github.com/devpost/blog-api/internal/store"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// UpdateUserRequest defines the payload for updating a user.
type UpdateUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// CategoryRequest defines the payload for creating or updating a category.
type CategoryRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// CreatePostRequest defines the payload for creating a post. The author is
// the authenticated principal, never a request field.
type CreatePostRequest struct {
	Title      string `json:"title"       validate:"required"`
	Content    string `json:"content"     validate:"required"`
	Image      string `json:"image"`
	CategoryID int64  `json:"category_id" validate:"required,gt=0"`
}

// UpdatePostRequest defines the payload for updating a post. A zero
// category ID leaves the post's category unchanged.
type UpdatePostRequest struct {
	Title      string `json:"title"   validate:"required"`
	Content    string `json:"content" validate:"required"`
	Image      string `json:"image"`
	CategoryID int64  `json:"category_id"`
}

// CommentRequest defines the payload for creating or updating a comment.
type CommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// UserResponse represents the response data for a user. The password never
// appears in any response shape.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CategoryResponse represents the response data for a category.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// PostResponse represents the response data for a post.
type PostResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Image      string    `json:"image,omitempty"`
	Date       time.Time `json:"date"`
	CategoryID int64     `json:"category_id"`
	UserID     int64     `json:"user_id"`
}

// CommentResponse represents the response data for a comment.
type CommentResponse struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
	UserID  int64  `json:"user_id"`
	PostID  int64  `json:"post_id"`
}

// userToResponse converts a domain.User to a UserResponse.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// categoryToResponse converts a domain.Category to a CategoryResponse.
func categoryToResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Title:       category.Title,
		Description: category.Description,
	}
}

// postToResponse converts a domain.Post to a PostResponse.
func postToResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		Image:      post.Image,
		Date:       post.Date,
		CategoryID: post.CategoryID,
		UserID:     post.UserID,
	}
}

// commentToResponse converts a domain.Comment to a CommentResponse.
func commentToResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:      comment.ID,
		Content: comment.Content,
		UserID:  comment.UserID,
		PostID:  comment.PostID,
	}
}

// pageToResponse converts a store page of domain values into a page of
// response DTOs, preserving the paging metadata.
func pageToResponse[T, R any](page store.Page[T], convert func(*T) R) store.Page[R] {
	content := make([]R, 0, len(page.Content))
	for i := range page.Content {
		content = append(content, convert(&page.Content[i]))
	}
	return store.Page[R]{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
}
