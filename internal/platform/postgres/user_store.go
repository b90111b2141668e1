package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/devpost/blog-api/internal/domain"
	"github.com/devpost/blog-api/internal/platform/logger"
	"github.com/devpost/blog-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create
// It saves a new user to the database and assigns the generated ID.
// Returns store.ErrEmailExists if the email is already taken.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, user.Name, user.Email, user.Password).
		Scan(&user.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("attempted to create user with existing email",
				slog.String("email", user.Email))
			return store.ErrEmailExists
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("email", user.Email))
		return MapError(err)
	}

	log.Info("user created successfully",
		slog.Int64("user_id", user.ID),
		slog.String("email", user.Email))
	return nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, email, password
		FROM users
		WHERE id = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.Int64("user_id", id))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, MapError(err)
	}

	return &user, nil
}

// GetByEmail implements store.UserStore.GetByEmail
// The lookup is an exact, case-sensitive match.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, email, password
		FROM users
		WHERE email = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found by email", slog.String("email", email))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return nil, MapError(err)
	}

	return &user, nil
}

// ExistsByEmail implements store.UserStore.ExistsByEmail
func (s *PostgresUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		log.Error("failed to check user existence by email",
			slog.String("error", err.Error()),
			slog.String("email", email))
		return false, MapError(err)
	}

	return exists, nil
}

// List implements store.UserStore.List
// It retrieves a page of users ordered by ascending ID.
func (s *PostgresUserStore) List(ctx context.Context, page, size int) (store.Page[domain.User], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	page, size = store.NormalizePageRequest(page, size)

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&total); err != nil {
		log.Error("failed to count users", slog.String("error", err.Error()))
		return store.Page[domain.User]{}, MapError(err)
	}

	query := `
		SELECT id, name, email, password
		FROM users
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, size, page*size)
	if err != nil {
		log.Error("failed to query users", slog.String("error", err.Error()))
		return store.Page[domain.User]{}, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Password); err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return store.Page[domain.User]{}, MapError(err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return store.Page[domain.User]{}, MapError(err)
	}

	return store.NewPage(users, page, size, total), nil
}

// Update implements store.UserStore.Update
// Returns store.ErrUserNotFound if the user does not exist.
// Returns store.ErrEmailExists when updating to an email that is taken.
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return err
	}

	query := `
		UPDATE users
		SET name = $1, email = $2, password = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(ctx, query, user.Name, user.Email, user.Password, user.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrEmailExists
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrUserNotFound); err != nil {
		return err
	}

	log.Info("user updated successfully", slog.Int64("user_id", user.ID))
	return nil
}

// Delete implements store.UserStore.Delete
// Owned posts and comments are removed by ON DELETE CASCADE.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrUserNotFound); err != nil {
		return err
	}

	log.Info("user deleted successfully", slog.Int64("user_id", id))
	return nil
}

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}
