// Package auth implements the credential gate run in front of every gated
// request. Credentials travel as an HTTP Basic header carrying
// email:password; passwords are opaque strings compared verbatim against
// the stored value, with no hashing involved.
package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"

	"github.com/devpost/blog-api/internal/domain"
	"github.com/devpost/blog-api/internal/platform/logger"
	"github.com/devpost/blog-api/internal/store"
)

// basicPrefix is the scheme marker expected on the Authorization header.
const basicPrefix = "Basic "

// CredentialStore is the slice of the user store the authenticator needs.
// store.UserStore satisfies it.
type CredentialStore interface {
	// GetByEmail retrieves a user by their email address.
	// Returns store.ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Authenticator validates inbound credentials and produces the authenticated
// principal. It never mutates stored state.
type Authenticator struct {
	creds  CredentialStore
	logger *slog.Logger
}

// NewAuthenticator creates a new Authenticator backed by the given
// credential store. If logger is nil, a default logger will be used.
func NewAuthenticator(creds CredentialStore, logger *slog.Logger) *Authenticator {
	if creds == nil {
		panic("credential store cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Authenticator{
		creds:  creds,
		logger: logger.With(slog.String("component", "authenticator")),
	}
}

// Authenticate resolves the Authorization header value to a user.
//
// The header must carry "Basic " followed by base64(email:password).
// Failure classification:
//   - ErrMissingCredentials: empty header or wrong scheme
//   - ErrMalformedCredentials: undecodable base64 or no colon separator
//   - ErrInvalidCredentials: unknown email or password mismatch
func (a *Authenticator) Authenticate(ctx context.Context, authHeader string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, a.logger)

	if authHeader == "" || !strings.HasPrefix(authHeader, basicPrefix) {
		log.Debug("authentication header missing or not basic")
		return nil, ErrMissingCredentials
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(authHeader, basicPrefix))
	if err != nil {
		log.Debug("authentication header is not valid base64")
		return nil, ErrMalformedCredentials
	}

	email, password, ok := strings.Cut(string(decoded), ":")
	if !ok || email == "" {
		log.Debug("authentication header has no email:password form")
		return nil, ErrMalformedCredentials
	}

	user, err := a.creds.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("authentication failed: unknown email",
				slog.String("email", email))
			return nil, ErrInvalidCredentials
		}
		log.Error("failed to resolve credentials",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return nil, err
	}

	// Verbatim comparison against the stored password.
	if user.Password != password {
		log.Debug("authentication failed: password mismatch",
			slog.String("email", email))
		return nil, ErrInvalidCredentials
	}

	log.Debug("authentication succeeded",
		slog.Int64("user_id", user.ID),
		slog.String("email", email))
	return user, nil
}
