package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/devpost/blog-api/internal/config"
	"github.com/devpost/blog-api/internal/platform/postgres"
	"github.com/devpost/blog-api/internal/service"
	"github.com/devpost/blog-api/internal/service/auth"
	"github.com/devpost/blog-api/internal/store"
)

// application holds the wired dependencies shared by the router and the
// HTTP server: configuration, logger, database handle, stores and services.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	categoryStore store.CategoryStore
	postStore     store.PostStore
	commentStore  store.CommentStore

	authenticator   *auth.Authenticator
	userService     service.UserService
	categoryService service.CategoryService
	postService     service.PostService
	commentService  service.CommentService
}

// newApplication connects to the database, applies pending migrations and
// builds the store and service graph.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runMigrations(db, logger); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			logger.Error("failed to close database after migration error", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	categoryStore := postgres.NewPostgresCategoryStore(db, logger)
	postStore := postgres.NewPostgresPostStore(db, logger)
	commentStore := postgres.NewPostgresCommentStore(db, logger)

	app := &application{
		config: cfg,
		logger: logger,
		db:     db,

		userStore:     userStore,
		categoryStore: categoryStore,
		postStore:     postStore,
		commentStore:  commentStore,

		authenticator:   auth.NewAuthenticator(userStore, logger),
		userService:     service.NewUserService(userStore, db, logger),
		categoryService: service.NewCategoryService(categoryStore, logger),
		postService:     service.NewPostService(postStore, categoryStore, userStore, logger),
		commentService:  service.NewCommentService(commentStore, postStore, logger),
	}

	return app, nil
}

// cleanup releases the application's long-lived resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
