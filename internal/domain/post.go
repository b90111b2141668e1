package domain

import (
	"errors"
	"time"
)

// Post-specific validation errors
var (
	// ErrPostTitleEmpty is returned when a post's title is missing.
	ErrPostTitleEmpty = errors.New("post title cannot be empty")

	// ErrPostContentEmpty is returned when a post's content is missing.
	ErrPostContentEmpty = errors.New("post content cannot be empty")

	// ErrPostCategoryEmpty is returned when a post has no owning category.
	ErrPostCategoryEmpty = errors.New("post category cannot be empty")

	// ErrPostUserEmpty is returned when a post has no owning user.
	ErrPostUserEmpty = errors.New("post user cannot be empty")
)

// Post represents a blog post created by a user. Every post belongs to
// exactly one category and one author; the author is the only user allowed
// to mutate or delete it.
type Post struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Image      string    `json:"image,omitempty"`
	Date       time.Time `json:"date"`
	CategoryID int64     `json:"category_id"`
	UserID     int64     `json:"user_id"`
}

// NewPost creates a new Post with the given fields and sets the creation
// date. The ID is assigned by the store on save.
// Returns an error if validation fails.
func NewPost(title, content, image string, categoryID, userID int64) (*Post, error) {
	post := &Post{
		Title:      title,
		Content:    content,
		Image:      image,
		Date:       time.Now().UTC(),
		CategoryID: categoryID,
		UserID:     userID,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks if the Post has valid data.
func (p *Post) Validate() error {
	if p.Title == "" {
		return ErrPostTitleEmpty
	}
	if p.Content == "" {
		return ErrPostContentEmpty
	}
	if p.CategoryID == 0 {
		return ErrPostCategoryEmpty
	}
	if p.UserID == 0 {
		return ErrPostUserEmpty
	}
	return nil
}
