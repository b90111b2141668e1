package domain

import "errors"

// User-specific validation errors
var (
	// ErrUserNameEmpty is returned when a user's name is missing.
	ErrUserNameEmpty = errors.New("user name cannot be empty")

	// ErrUserEmailEmpty is returned when a user's email is missing.
	ErrUserEmailEmpty = errors.New("user email cannot be empty")

	// ErrUserPasswordEmpty is returned when a user's password is missing.
	ErrUserPasswordEmpty = errors.New("user password cannot be empty")
)

// User represents a registered user of the blog application.
//
// The password is an opaque string compared verbatim against inbound
// credentials; the application deliberately performs no hashing or salting.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"` // Never expose the password in JSON
}

// NewUser creates a new User with the given name, email and password.
// The ID is assigned by the store on save.
// Returns an error if validation fails.
func NewUser(name, email, password string) (*User, error) {
	user := &User{
		Name:     name,
		Email:    email,
		Password: password,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any required field is missing.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrUserNameEmpty
	}
	if u.Email == "" {
		return ErrUserEmailEmpty
	}
	if u.Password == "" {
		return ErrUserPasswordEmpty
	}
	return nil
}
