package api

import (
	"time"

	"github.com/salonworks/catalog-api/internal/api/shared"
	"github.com/salonworks/catalog-api/internal/domain"
)

// ServiceResponse represents the response data for a single service.
type ServiceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ServiceEnvelope wraps a single service in the success envelope.
type ServiceEnvelope struct {
	Status  string          `json:"status"`
	Service ServiceResponse `json:"service"`
}

// ServiceListEnvelope wraps a service listing and its pagination summary.
type ServiceListEnvelope struct {
	Status     string            `json:"status"`
	Services   []ServiceResponse `json:"services"`
	Pagination shared.Pagination `json:"pagination"`
}

// CountResponse is the response body for the count endpoint.
type CountResponse struct {
	ServiceCount int64 `json:"serviceCount"`
}

// serviceToResponse converts a domain.Service to a ServiceResponse.
func serviceToResponse(service *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:        service.ID.String(),
		Name:      service.Name,
		Price:     service.Price,
		CreatedAt: service.CreatedAt,
		UpdatedAt: service.UpdatedAt,
	}
}

// servicesToResponse converts a slice of domain services, never returning
// nil so the JSON listing is always an array.
func servicesToResponse(services []*domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, service := range services {
		result = append(result, serviceToResponse(service))
	}
	return result
}
