package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/devpost/blog-api/internal/domain"
	"github.com/devpost/blog-api/internal/service/auth"
	"github.com/devpost/blog-api/internal/store"
)

// UserService provides user-related operations: registration, login and CRUD.
type UserService interface {
	// ListUsers retrieves a page of users. An empty result is not an error.
	ListUsers(ctx context.Context, page, size int) (store.Page[domain.User], error)

	// GetUser retrieves a user by their ID.
	GetUser(ctx context.Context, userID int64) (*domain.User, error)

	// Register creates a new user. The email must not already be taken;
	// a clash yields store.ErrEmailExists.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)

	// Login resolves the email to a user and compares the password verbatim.
	// A lookup miss or mismatch yields auth.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*domain.User, error)

	// UpdateUser replaces a user's name, email and password.
	// No uniqueness re-check runs on update beyond the schema constraint.
	UpdateUser(ctx context.Context, userID int64, name, email, password string) (*domain.User, error)

	// DeleteUser deletes a user by their ID. Owned posts and comments are
	// removed by the persistence layer's cascade rules.
	DeleteUser(ctx context.Context, userID int64) error
}

// userServiceImpl implements the UserService interface.
type userServiceImpl struct {
	userStore store.UserStore
	db        store.TxBeginner
	logger    *slog.Logger
}

// NewUserService creates a new UserService. A nil db runs the transactional
// operations without a transaction; production wiring passes the *sql.DB.
func NewUserService(userStore store.UserStore, db store.TxBeginner, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &userServiceImpl{
		userStore: userStore,
		db:        db,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// ListUsers implements UserService.ListUsers
func (s *userServiceImpl) ListUsers(ctx context.Context, page, size int) (store.Page[domain.User], error) {
	users, err := s.userStore.List(ctx, page, size)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return store.Page[domain.User]{}, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser implements UserService.GetUser
func (s *userServiceImpl) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found", "user_id", userID)
		} else {
			s.logger.Error("failed to retrieve user", "error", err, "user_id", userID)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}

// Register implements UserService.Register
// Name and email are required; the email must not already exist
// (case-sensitive exact match). Runs the existence check strictly before
// persistence; the two calls are not atomically composed.
func (s *userServiceImpl) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	user, err := domain.NewUser(name, email, password)
	if err != nil {
		s.logger.Debug("invalid user data on registration", "error", err, "email", email)
		return nil, err
	}

	exists, err := s.userStore.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("failed to check email existence", "error", err, "email", email)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	if exists {
		s.logger.Debug("attempted to register with existing email", "email", email)
		return nil, store.ErrEmailExists
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			// Lost the race against a concurrent registration.
			s.logger.Debug("email taken concurrently", "email", email)
			return nil, err
		}
		s.logger.Error("failed to save user", "error", err, "email", email)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered successfully", "user_id", user.ID, "email", email)
	return user, nil
}

// Login implements UserService.Login
func (s *userServiceImpl) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login failed: unknown email", "email", email)
			return nil, auth.ErrInvalidCredentials
		}
		s.logger.Error("failed to retrieve user for login", "error", err, "email", email)
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	if user.Password != password {
		s.logger.Debug("login failed: password mismatch", "email", email)
		return nil, auth.ErrInvalidCredentials
	}

	s.logger.Info("user logged in", "user_id", user.ID, "email", email)
	return user, nil
}

// UpdateUser implements UserService.UpdateUser
func (s *userServiceImpl) UpdateUser(ctx context.Context, userID int64, name, email, password string) (*domain.User, error) {
	var updated *domain.User
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		user, err := txStore.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to retrieve user for update: %w", err)
		}

		user.Name = name
		user.Email = email
		user.Password = password

		if err := txStore.Update(ctx, user); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}

		updated = user
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found for update", "user_id", userID)
		} else {
			s.logger.Error("failed to update user", "error", err, "user_id", userID)
		}
		return nil, err
	}

	s.logger.Info("user updated successfully", "user_id", userID)
	return updated, nil
}

// DeleteUser implements UserService.DeleteUser
func (s *userServiceImpl) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.userStore.Delete(ctx, userID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found for delete", "user_id", userID)
		} else {
			s.logger.Error("failed to delete user", "error", err, "user_id", userID)
		}
		return err
	}

	s.logger.Info("user deleted successfully", "user_id", userID)
	return nil
}
