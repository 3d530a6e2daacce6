package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/salonworks/catalog-api/internal/config"
	"github.com/salonworks/catalog-api/internal/platform/postgres"
	"github.com/salonworks/catalog-api/internal/service/auth"
	"github.com/salonworks/catalog-api/internal/store"
)

// application holds the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	serviceStore store.ServiceStore
	jwtService   auth.JWTService
}

// newApplication wires up the application's services and stores from the
// loaded configuration and an open database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:       cfg,
		logger:       logger,
		db:           db,
		serviceStore: postgres.NewPostgresServiceStore(db, logger),
		jwtService:   jwtService,
	}, nil
}

// cleanup releases application resources on shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
