package mocks

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/salonworks/catalog-api/internal/domain"
	"github.com/salonworks/catalog-api/internal/store"
)

// MemoryServiceStore is an in-memory store.ServiceStore for testing.
// It preserves insertion order for List, like the real store.
type MemoryServiceStore struct {
	mu       sync.Mutex
	order    []uuid.UUID
	services map[uuid.UUID]*domain.Service

	// Err, when set, is returned by every operation. Used to simulate
	// store failures.
	Err error
}

var _ store.ServiceStore = (*MemoryServiceStore)(nil)

// NewMemoryServiceStore creates an empty in-memory service store.
func NewMemoryServiceStore() *MemoryServiceStore {
	return &MemoryServiceStore{
		services: make(map[uuid.UUID]*domain.Service),
	}
}

// Create implements store.ServiceStore.
func (m *MemoryServiceStore) Create(ctx context.Context, service *domain.Service) error {
	if m.Err != nil {
		return m.Err
	}
	if err := service.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.services[service.ID]; exists {
		return store.ErrDuplicate
	}

	copied := *service
	m.services[service.ID] = &copied
	m.order = append(m.order, service.ID)
	return nil
}

// GetByID implements store.ServiceStore.
func (m *MemoryServiceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	service, ok := m.services[id]
	if !ok {
		return nil, store.ErrServiceNotFound
	}

	copied := *service
	return &copied, nil
}

// UpdateByID implements store.ServiceStore.
func (m *MemoryServiceStore) UpdateByID(
	ctx context.Context,
	id uuid.UUID,
	patch store.ServicePatch,
) (*domain.Service, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	service, ok := m.services[id]
	if !ok {
		return nil, store.ErrServiceNotFound
	}

	// Validate the whole patch before mutating anything, matching the
	// single-statement atomicity of the SQL store.
	if patch.Name != nil && *patch.Name == "" {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrServiceNameEmpty)
	}
	if patch.Price != nil && *patch.Price == 0 {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrServicePriceMissing)
	}

	if patch.Name != nil {
		if err := service.Rename(*patch.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
		}
	}
	if patch.Price != nil {
		if err := service.Reprice(*patch.Price); err != nil {
			return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
		}
	}

	copied := *service
	return &copied, nil
}

// DeleteByID implements store.ServiceStore.
func (m *MemoryServiceStore) DeleteByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	service, ok := m.services[id]
	if !ok {
		return nil, store.ErrServiceNotFound
	}

	delete(m.services, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}

	return service, nil
}

// List implements store.ServiceStore.
func (m *MemoryServiceStore) List(ctx context.Context, offset, limit int) ([]*domain.Service, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if offset >= len(m.order) {
		return nil, nil
	}

	end := offset + limit
	if end > len(m.order) {
		end = len(m.order)
	}

	result := make([]*domain.Service, 0, end-offset)
	for _, id := range m.order[offset:end] {
		copied := *m.services[id]
		result = append(result, &copied)
	}
	return result, nil
}

// Count implements store.ServiceStore.
func (m *MemoryServiceStore) Count(ctx context.Context) (int64, error) {
	if m.Err != nil {
		return 0, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.order)), nil
}

// WithTx implements store.ServiceStore. The in-memory store has no real
// transactions; it returns itself.
func (m *MemoryServiceStore) WithTx(tx *sql.Tx) store.ServiceStore {
	return m
}
