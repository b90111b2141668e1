package auth

import "errors"

// Authentication failure taxonomy. All three surface to clients as the same
// unauthorized outcome; only the internal message text differs.
var (
	// ErrMissingCredentials is returned when the credential header is absent
	// or does not carry the expected scheme.
	ErrMissingCredentials = errors.New("authentication credentials are missing")

	// ErrMalformedCredentials is returned when the credential header is
	// present but cannot be decoded or split into its two fields.
	ErrMalformedCredentials = errors.New("authentication credentials are malformed")

	// ErrInvalidCredentials is returned when the identifying value resolves
	// to no user, or the secret does not match the stored password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// IsAuthenticationError checks if the error belongs to the authentication
// failure taxonomy.
func IsAuthenticationError(err error) bool {
	return errors.Is(err, ErrMissingCredentials) ||
		errors.Is(err, ErrMalformedCredentials) ||
		errors.Is(err, ErrInvalidCredentials)
}
