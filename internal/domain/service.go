package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Service-specific validation errors
var (
	// ErrServiceIDEmpty is returned when a service ID is empty or nil.
	ErrServiceIDEmpty = errors.New("service ID cannot be empty")

	// ErrServiceNameEmpty is returned when a service name is missing or blank.
	ErrServiceNameEmpty = errors.New("service name cannot be empty")

	// ErrServicePriceMissing is returned when a service price is absent.
	// A zero price counts as absent under the catalog's validation policy.
	ErrServicePriceMissing = errors.New("service price is required")
)

// Service represents a single entry in the service catalog: something the
// business offers at a price (e.g. a haircut). It is the only entity the
// API manages.
type Service struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewService creates a new Service with the given name and price.
// It assigns a fresh UUID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewService(name string, price float64) (*Service, error) {
	now := time.Now().UTC()
	service := &Service{
		ID:        uuid.New(),
		Name:      name,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := service.Validate(); err != nil {
		return nil, err
	}

	return service, nil
}

// Validate checks if the Service has valid data.
// Returns an error if any field fails validation.
func (s *Service) Validate() error {
	if s.ID == uuid.Nil {
		return ErrServiceIDEmpty
	}

	if s.Name == "" {
		return ErrServiceNameEmpty
	}

	if s.Price == 0 {
		return ErrServicePriceMissing
	}

	return nil
}

// Rename changes the service's name and bumps the UpdatedAt timestamp.
// Returns an error if the new name is invalid; the service is left
// unchanged in that case.
func (s *Service) Rename(name string) error {
	if name == "" {
		return ErrServiceNameEmpty
	}

	s.Name = name
	s.UpdatedAt = time.Now().UTC()
	return nil
}

// Reprice changes the service's price and bumps the UpdatedAt timestamp.
// Returns an error if the new price is absent (zero); the service is
// left unchanged in that case.
func (s *Service) Reprice(price float64) error {
	if price == 0 {
		return ErrServicePriceMissing
	}

	s.Price = price
	s.UpdatedAt = time.Now().UTC()
	return nil
}
