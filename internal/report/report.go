// Package report renders a single post, joined with its category title and
// author name, into downloadable document formats. Each renderer writes the
// same five fields in the same order: Title, Category, User, Content, Date.
package report

import (
	"errors"

	"github.com/devpost/blog-api/internal/store"
)

// ErrNilDetail is returned when a renderer is handed no post detail.
var ErrNilDetail = errors.New("post detail cannot be nil")

// dateLayout is the human-readable form the post date takes in every
// rendered document.
const dateLayout = "2006-01-02 15:04:05"

// fieldLabels are the row labels shared by all three renderers.
var fieldLabels = [5]string{"Title", "Category", "User", "Content", "Date"}

// fieldValues extracts the post detail's values in label order.
func fieldValues(detail *store.PostDetail) [5]string {
	return [5]string{
		detail.Post.Title,
		detail.CategoryTitle,
		detail.UserName,
		detail.Post.Content,
		detail.Post.Date.Format(dateLayout),
	}
}
