package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/salonworks/catalog-api/internal/domain"
	"github.com/salonworks/catalog-api/internal/store"
)

// PostgresServiceStore implements the store.ServiceStore interface
// using a PostgreSQL database as the storage backend.
type PostgresServiceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresServiceStore creates a new PostgreSQL implementation of the
// ServiceStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresServiceStore(db store.DBTX, logger *slog.Logger) *PostgresServiceStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresServiceStore{
		db:     db,
		logger: logger.With(slog.String("component", "service_store")),
	}
}

// Ensure PostgresServiceStore implements store.ServiceStore interface
var _ store.ServiceStore = (*PostgresServiceStore)(nil)

// Create implements store.ServiceStore.Create
func (s *PostgresServiceStore) Create(ctx context.Context, service *domain.Service) error {
	if err := service.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO services (id, name, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := s.db.ExecContext(ctx, query,
		service.ID, service.Name, service.Price, service.CreatedAt, service.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return store.NewStoreError("service", "create", store.ErrDuplicate)
		}
		return store.NewStoreError("service", "create", err)
	}

	s.logger.Debug("service created", slog.String("service_id", service.ID.String()))
	return nil
}

// GetByID implements store.ServiceStore.GetByID
func (s *PostgresServiceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	query := `
		SELECT id, name, price, created_at, updated_at
		FROM services
		WHERE id = $1
	`

	service, err := scanService(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrServiceNotFound
		}
		return nil, store.NewStoreError("service", "get", err)
	}

	return service, nil
}

// UpdateByID implements store.ServiceStore.UpdateByID
// The patch is applied in a single statement so concurrent writers never
// observe a partially updated row.
func (s *PostgresServiceStore) UpdateByID(
	ctx context.Context,
	id uuid.UUID,
	patch store.ServicePatch,
) (*domain.Service, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrServiceNameEmpty)
	}
	if patch.Price != nil && *patch.Price == 0 {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrServicePriceMissing)
	}

	query := `
		UPDATE services
		SET name = COALESCE($2, name),
		    price = COALESCE($3, price),
		    updated_at = now()
		WHERE id = $1
		RETURNING id, name, price, created_at, updated_at
	`

	service, err := scanService(s.db.QueryRowContext(ctx, query, id, patch.Name, patch.Price))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrServiceNotFound
		}
		return nil, store.NewStoreError("service", "update", err)
	}

	s.logger.Debug("service updated", slog.String("service_id", id.String()))
	return service, nil
}

// DeleteByID implements store.ServiceStore.DeleteByID
// The RETURNING clause yields the deleted snapshot; a repeat delete of
// the same id matches no rows and reports ErrServiceNotFound.
func (s *PostgresServiceStore) DeleteByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	query := `
		DELETE FROM services
		WHERE id = $1
		RETURNING id, name, price, created_at, updated_at
	`

	service, err := scanService(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrServiceNotFound
		}
		return nil, store.NewStoreError("service", "delete", err)
	}

	s.logger.Debug("service deleted", slog.String("service_id", id.String()))
	return service, nil
}

// List implements store.ServiceStore.List
func (s *PostgresServiceStore) List(ctx context.Context, offset, limit int) ([]*domain.Service, error) {
	query := `
		SELECT id, name, price, created_at, updated_at
		FROM services
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, store.NewStoreError("service", "list", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var services []*domain.Service
	for rows.Next() {
		var service domain.Service
		if err := rows.Scan(
			&service.ID, &service.Name, &service.Price,
			&service.CreatedAt, &service.UpdatedAt,
		); err != nil {
			return nil, store.NewStoreError("service", "list", err)
		}
		services = append(services, &service)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("service", "list", err)
	}

	return services, nil
}

// Count implements store.ServiceStore.Count
func (s *PostgresServiceStore) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM services`).Scan(&total); err != nil {
		return 0, store.NewStoreError("service", "count", err)
	}
	return total, nil
}

// WithTx implements store.ServiceStore.WithTx
func (s *PostgresServiceStore) WithTx(tx *sql.Tx) store.ServiceStore {
	return &PostgresServiceStore{
		db:     tx,
		logger: s.logger,
	}
}

// scanService reads one service row.
func scanService(row *sql.Row) (*domain.Service, error) {
	var service domain.Service
	err := row.Scan(
		&service.ID, &service.Name, &service.Price,
		&service.CreatedAt, &service.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &service, nil
}
