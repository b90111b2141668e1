// Package main implements the entry point for the blog API server, which
// serves users, categories, posts and comments over HTTP and renders
// per-post report downloads.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/devpost/blog-api/internal/config"
	"github.com/devpost/blog-api/internal/platform/logger"
)

// main initializes configuration, logging, the database connection and all
// application services, then starts the HTTP server and blocks until it
// shuts down.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging and wires the
// application dependencies.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to build application: %w", err)
	}

	return app, nil
}
