package api

import (
	"net/http"
	"strconv"

	"github.com/devpost/blog-api/internal/api/shared"
	"github.com/devpost/blog-api/internal/domain"
	"github.com/devpost/blog-api/internal/service"
	"github.com/go-chi/chi/v5"
)

// Query parameter names shared by all paged list endpoints.
const (
	pageParam = "page"
	sizeParam = "size"
)

// getPrincipalIDFromContext extracts the authenticated user's ID from the
// request context. The ID is placed there by the authentication middleware.
func getPrincipalIDFromContext(r *http.Request) (int64, bool) {
	return shared.GetPrincipalID(r.Context())
}

// getPathID extracts a numeric identifier from the URL path parameters.
// Returns a validation error when the parameter is missing or not a
// positive integer.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// getPageParams reads the page and size query parameters. Absent or
// unparseable values fall back to page 0 and a zero size, which the store
// layer normalizes to its default.
func getPageParams(r *http.Request) (page, size int) {
	if v, err := strconv.Atoi(r.URL.Query().Get(pageParam)); err == nil {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get(sizeParam)); err == nil {
		size = v
	}
	return page, size
}

// handlePrincipalAndPathID extracts both the principal ID from the context
// and a numeric ID from the path. It writes an error response and returns
// false if either extraction fails.
func handlePrincipalAndPathID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
) (principalID, pathID int64, ok bool) {
	principalID, found := getPrincipalIDFromContext(r)
	if !found {
		HandleAPIError(w, r, service.ErrNoPrincipal, "")
		return 0, 0, false
	}

	pathID, err := getPathID(r, paramName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return 0, 0, false
	}

	return principalID, pathID, true
}
