package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	// Register the pgx driver with database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/salonworks/catalog-api/internal/config"
	"github.com/salonworks/catalog-api/internal/redact"
)

const (
	dbMaxOpenConns    = 25
	dbMaxIdleConns    = 25
	dbConnMaxLifetime = 5 * time.Minute
	dbPingTimeout     = 5 * time.Second
)

// setupDatabase opens the connection pool and verifies connectivity before
// the server starts accepting requests.
func setupDatabase(cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	db.SetConnMaxLifetime(dbConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			logger.Warn("failed to close database after ping failure", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to ping database: %s", redact.Error(err))
	}

	logger.Info("database connection established",
		"max_open_conns", dbMaxOpenConns,
		"conn_max_lifetime", dbConnMaxLifetime)

	return db, nil
}
