package domain

import (
	"errors"
	"strings"
)

// Comment-specific validation errors
var (
	// ErrCommentContentBlank is returned when a comment's content is empty
	// or consists solely of whitespace.
	ErrCommentContentBlank = errors.New("comment content cannot be blank")

	// ErrCommentPostEmpty is returned when a comment has no owning post.
	ErrCommentPostEmpty = errors.New("comment post cannot be empty")

	// ErrCommentUserEmpty is returned when a comment has no owning user.
	ErrCommentUserEmpty = errors.New("comment user cannot be empty")
)

// Comment represents a user's comment on a specific blog post.
// The commenter is the only user allowed to mutate or delete it.
type Comment struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
	UserID  int64  `json:"user_id"`
	PostID  int64  `json:"post_id"`
}

// NewComment creates a new Comment with the given content, commenter and
// post. The ID is assigned by the store on save.
func NewComment(content string, userID, postID int64) (*Comment, error) {
	comment := &Comment{
		Content: content,
		UserID:  userID,
		PostID:  postID,
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks if the Comment has valid data.
// Whitespace-only content counts as blank.
func (c *Comment) Validate() error {
	if strings.TrimSpace(c.Content) == "" {
		return ErrCommentContentBlank
	}
	if c.PostID == 0 {
		return ErrCommentPostEmpty
	}
	if c.UserID == 0 {
		return ErrCommentUserEmpty
	}
	return nil
}
