package domain

import "errors"

// ErrCategoryTitleEmpty is returned when a category's title is missing.
var ErrCategoryTitleEmpty = errors.New("category title cannot be empty")

// Category represents a classification under which blog posts are organized.
type Category struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// NewCategory creates a new Category with the given title and description.
// The ID is assigned by the store on save.
func NewCategory(title, description string) (*Category, error) {
	category := &Category{
		Title:       title,
		Description: description,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.Title == "" {
		return ErrCategoryTitleEmpty
	}
	return nil
}
