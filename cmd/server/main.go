// Package main implements the entry point for the notes API server:
// a small JSON-over-HTTP service with JWT-authenticated note CRUD
// backed by PostgreSQL.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/notekeeper/notes-api/internal/config"
	"github.com/notekeeper/notes-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("notes-api: %v", err)
	}
}

// run wires configuration, logging, the database, and the application
// together, then blocks until the server shuts down.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runMigrations(db, appLogger); err != nil {
		closeDatabase(db, appLogger)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		closeDatabase(db, appLogger)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := app.Run(context.Background()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
