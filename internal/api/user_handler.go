package api

import (
	"net/http"

	"github.com/devpost/blog-api/internal/api/shared"
	"github.com/devpost/blog-api/internal/service"
	"github.com/go-playground/validator/v10"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
	}
}

// Register handles POST /api/users/register requests
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to register user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// Login handles POST /api/users/login requests
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to login")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// ListUsers handles GET /api/users requests
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, size := getPageParams(r)

	users, err := h.userService.ListUsers(r.Context(), page, size)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list users")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pageToResponse(users, userToResponse))
}

// GetUser handles GET /api/users/{userID} requests
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathID(r, "userID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// UpdateUser handles PUT /api/users/{userID} requests
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathID(r, "userID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), userID, req.Name, req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// DeleteUser handles DELETE /api/users/{userID} requests
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathID(r, "userID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.userService.DeleteUser(r.Context(), userID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}
