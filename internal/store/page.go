package store

// DefaultPageSize is applied when a caller requests a non-positive page size.
// No upper bound is enforced here; clamping is a deployment concern.
const DefaultPageSize = 10

// Page is a bounded slice of a larger ordered collection, described by a
// zero-based page index and a page size. Ordering within a page follows
// ascending entity ID unless a store method documents otherwise.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// NewPage assembles a Page from the fetched content and the total row count
// of the underlying collection.
func NewPage[T any](content []T, page, size int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}

// IsEmpty reports whether the page contains no rows.
func (p Page[T]) IsEmpty() bool {
	return len(p.Content) == 0
}

// NormalizePageRequest applies the defaulting rules shared by all paged
// store methods: negative page indexes become 0 and non-positive sizes
// fall back to DefaultPageSize.
func NormalizePageRequest(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	return page, size
}
