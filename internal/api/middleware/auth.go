package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/devpost/blog-api/internal/api/shared"
	"github.com/devpost/blog-api/internal/service/auth"
)

// AuthMiddleware gates routes behind Basic credential authentication.
// Requests whose path starts with one of the configured bypass prefixes
// pass through without any credential check.
type AuthMiddleware struct {
	authenticator  *auth.Authenticator
	bypassPrefixes []string
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(authenticator *auth.Authenticator, bypassPrefixes []string) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator:  authenticator,
		bypassPrefixes: bypassPrefixes,
	}
}

// Authenticate resolves the Authorization header to a user and adds the
// user's ID to the request context for authorized requests. The bypass
// allow-list is consulted before any credential inspection, so bypassed
// paths succeed even with a garbage header.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, prefix := range m.bypassPrefixes {
			if strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}

		user, err := m.authenticator.Authenticate(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			switch {
			case auth.IsAuthenticationError(err):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			default:
				slog.Error("failed to authenticate request", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := shared.WithPrincipalID(r.Context(), user.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPrincipalID extracts the authenticated user's ID from the request context.
// Returns the ID and a boolean indicating if it was found.
func GetPrincipalID(r *http.Request) (int64, bool) {
	return shared.GetPrincipalID(r.Context())
}
