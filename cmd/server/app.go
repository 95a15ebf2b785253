package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/notekeeper/notes-api/internal/config"
	"github.com/notekeeper/notes-api/internal/platform/metrics"
	"github.com/notekeeper/notes-api/internal/platform/postgres"
	"github.com/notekeeper/notes-api/internal/service/auth"
	"github.com/notekeeper/notes-api/internal/store"
)

// application holds the wired dependency graph for the server. Handlers
// and middleware hang off these fields; nothing reaches for globals.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	noteStore store.NoteStore

	jwtService  auth.JWTService
	credentials *auth.CredentialService

	instrumentation *metrics.Instrumentation
}

// newApplication creates an application instance with all dependencies
// initialized. Configuration, logging, and the database connection must
// already be established.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.userStore = postgres.NewUserStore(db, logger)
	app.noteStore = postgres.NewNoteStore(db, logger)

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.credentials = auth.NewCredentialService(app.userStore, hasher)

	app.instrumentation = metrics.New("notes_api", "server")

	logger.Info("application initialized")
	return app, nil
}

// Run starts the HTTP server and blocks until shutdown completes.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup releases resources on shutdown. The database pool closes
// last so in-flight handlers can finish their queries.
func (app *application) cleanup() {
	closeDatabase(app.db, app.logger)
}
