package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/salonworks/catalog-api/internal/domain"
)

// ServicePatch describes a partial update to a service. Nil fields are
// left untouched by the store.
type ServicePatch struct {
	Name  *string
	Price *float64
}

// ServiceStore defines the interface for service catalog persistence.
type ServiceStore interface {
	// Create saves a new service to the store.
	// The service must be valid according to domain validation rules;
	// returns ErrInvalidEntity (wrapped) otherwise.
	Create(ctx context.Context, service *domain.Service) error

	// GetByID retrieves a service by its unique ID.
	// Returns ErrServiceNotFound if the service does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)

	// UpdateByID applies a partial update to an existing service and
	// returns the post-update record. Nil patch fields are left untouched.
	// Returns ErrServiceNotFound if the service does not exist; the store
	// never creates a record here (update is not upsert).
	// Returns ErrInvalidEntity (wrapped) if a patch field is present but
	// invalid (blank name, zero price).
	UpdateByID(ctx context.Context, id uuid.UUID, patch ServicePatch) (*domain.Service, error)

	// DeleteByID removes a service from the store and returns the deleted
	// snapshot. Returns ErrServiceNotFound if the service does not exist,
	// including on a repeat delete of the same ID.
	DeleteByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)

	// List returns services in insertion order, skipping offset records
	// and returning at most limit records.
	List(ctx context.Context, offset, limit int) ([]*domain.Service, error)

	// Count returns the total number of services in the store.
	Count(ctx context.Context) (int64, error)

	// WithTx returns a new ServiceStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) ServiceStore
}
