package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"

	"github.com/devpost/blog-api/migrations"
)

// runMigrations applies any pending embedded migrations against the given
// database connection. All migration logs share a correlation ID so a full
// run can be traced as one operation.
func runMigrations(db *sql.DB, logger *slog.Logger) error {
	logger = logger.With(
		"correlation_id", uuid.New().String(),
		"component", "migrations",
	)

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&slogGooseLogger{logger: logger})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("Database migrations applied")
	return nil
}

// slogGooseLogger adapts goose's printf-style logger to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}
