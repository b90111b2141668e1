package api

import (
	"net/http"

	"github.com/devpost/blog-api/internal/api/shared"
	"github.com/devpost/blog-api/internal/service"
	"github.com/go-playground/validator/v10"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService service.CategoryService
	validator       *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		validator:       validator.New(),
	}
}

// ListCategories handles GET /api/categories requests
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	page, size := getPageParams(r)

	categories, err := h.categoryService.ListCategories(r.Context(), page, size)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list categories")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pageToResponse(categories, categoryToResponse))
}

// GetCategory handles GET /api/categories/{categoryID} requests
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := getPathID(r, "categoryID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	category, err := h.categoryService.GetCategory(r.Context(), categoryID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve category")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categoryToResponse(category))
}

// CreateCategory handles POST /api/categories requests
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	category, err := h.categoryService.CreateCategory(r.Context(), req.Title, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create category")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, categoryToResponse(category))
}

// UpdateCategory handles PUT /api/categories/{categoryID} requests
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := getPathID(r, "categoryID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req CategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	category, err := h.categoryService.UpdateCategory(r.Context(), categoryID, req.Title, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update category")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, categoryToResponse(category))
}

// DeleteCategory handles DELETE /api/categories/{categoryID} requests
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := getPathID(r, "categoryID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.categoryService.DeleteCategory(r.Context(), categoryID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete category")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}
