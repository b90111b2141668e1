package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/devpost/blog-api/internal/domain"
	"github.com/devpost/blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCredentialStore backs the authenticator with a fixed set of users.
type stubCredentialStore struct {
	users map[string]*domain.User
	err   error
}

func (s *stubCredentialStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

func basicHeader(email, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+password))
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	creds := &stubCredentialStore{
		users: map[string]*domain.User{
			"alice@example.com": {ID: 7, Name: "Alice", Email: "alice@example.com", Password: "s3cret"},
		},
	}
	authenticator := NewAuthenticator(creds, nil)

	tests := []struct {
		name    string
		header  string
		wantErr error
		wantID  int64
	}{
		{
			name:   "valid credentials",
			header: basicHeader("alice@example.com", "s3cret"),
			wantID: 7,
		},
		{
			name:    "missing header",
			header:  "",
			wantErr: ErrMissingCredentials,
		},
		{
			name:    "wrong scheme",
			header:  "Bearer sometoken",
			wantErr: ErrMissingCredentials,
		},
		{
			name:    "undecodable base64",
			header:  "Basic not-base64!!",
			wantErr: ErrMalformedCredentials,
		},
		{
			name:    "no colon separator",
			header:  "Basic " + base64.StdEncoding.EncodeToString([]byte("alice@example.com")),
			wantErr: ErrMalformedCredentials,
		},
		{
			name:    "unknown email",
			header:  basicHeader("nobody@example.com", "s3cret"),
			wantErr: ErrInvalidCredentials,
		},
		{
			name:    "password mismatch",
			header:  basicHeader("alice@example.com", "wrong"),
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "password comparison is case-sensitive",
			// Stored passwords are opaque strings compared verbatim.
			header:  basicHeader("alice@example.com", "S3CRET"),
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := authenticator.Authenticate(context.Background(), tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
		})
	}
}

func TestAuthenticateStoreFailure(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("connection refused")
	authenticator := NewAuthenticator(&stubCredentialStore{err: storeErr}, nil)

	_, err := authenticator.Authenticate(context.Background(), basicHeader("alice@example.com", "s3cret"))
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.False(t, IsAuthenticationError(err), "infrastructure failures are not credential failures")
}

func TestIsAuthenticationError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsAuthenticationError(ErrMissingCredentials))
	assert.True(t, IsAuthenticationError(ErrMalformedCredentials))
	assert.True(t, IsAuthenticationError(ErrInvalidCredentials))
	assert.False(t, IsAuthenticationError(errors.New("other")))
}

func TestNewAuthenticatorNilStorePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewAuthenticator(nil, nil)
	})
}
