// Package api provides HTTP handlers for the service catalog API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/salonworks/catalog-api/internal/api/shared"
	"github.com/salonworks/catalog-api/internal/domain"
	"github.com/salonworks/catalog-api/internal/platform/logger"
	"github.com/salonworks/catalog-api/internal/redact"
	"github.com/salonworks/catalog-api/internal/store"
)

// CreateServiceRequest is the request body for creating a service.
// Price uses the "required" tag deliberately: a zero price counts as
// missing under the catalog's validation policy.
type CreateServiceRequest struct {
	Name  string  `json:"name"  validate:"required"`
	Price float64 `json:"price" validate:"required"`
}

// UpdateServiceRequest is the request body for a whole-record update.
type UpdateServiceRequest struct {
	Name  string  `json:"name"  validate:"required"`
	Price float64 `json:"price" validate:"required"`
}

// UpdateNameRequest is the request body for a name-only update.
type UpdateNameRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdatePriceRequest is the request body for a price-only update.
type UpdatePriceRequest struct {
	Price float64 `json:"price" validate:"required"`
}

// ServiceHandler handles service catalog HTTP requests.
type ServiceHandler struct {
	serviceStore store.ServiceStore
	logger       *slog.Logger
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(serviceStore store.ServiceStore, logger *slog.Logger) *ServiceHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ServiceHandler")
	}

	return &ServiceHandler{
		serviceStore: serviceStore,
		logger:       logger.With(slog.String("component", "service_handler")),
	}
}

// Create handles POST /service requests.
// Both name and price must be present; validation runs before any store
// access.
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateServiceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("validation error", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Name and price are required")
		return
	}

	service, err := domain.NewService(req.Name, req.Price)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Name and price are required")
		return
	}

	if err := h.serviceStore.Create(r.Context(), service); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("service created",
		slog.String("service_id", service.ID.String()),
		slog.String("name", service.Name))
	shared.RespondWithJSON(w, r, http.StatusOK, ServiceEnvelope{
		Status:  shared.StatusSuccess,
		Service: serviceToResponse(service),
	})
}

// Get handles GET /service/{id} requests. The endpoint is deliberately
// open: reading the catalog requires no token.
func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := h.serviceIDFromPath(w, r)
	if !ok {
		return
	}

	service, err := h.serviceStore.GetByID(r.Context(), serviceID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ServiceEnvelope{
		Status:  shared.StatusSuccess,
		Service: serviceToResponse(service),
	})
}

// List handles GET /service requests with optional page/limit query
// parameters. A limit above the configured ceiling is rejected, never
// silently clamped.
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	params, err := shared.NewPageParams(
		r.URL.Query().Get("page"),
		r.URL.Query().Get("limit"),
	)
	if err != nil {
		log.Warn("invalid pagination parameters", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	services, err := h.serviceStore.List(r.Context(), params.Offset(), params.Limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list services", err)
		return
	}

	total, err := h.serviceStore.Count(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list services", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ServiceListEnvelope{
		Status:     shared.StatusSuccess,
		Services:   servicesToResponse(services),
		Pagination: shared.Paginate(params, total),
	})
}

// Update handles PUT /service/{id} requests: a whole-record update where
// both name and price must be present.
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	serviceID, ok := h.serviceIDFromPath(w, r)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("validation error", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Name and price are required")
		return
	}

	h.applyPatch(w, r, serviceID, store.ServicePatch{Name: &req.Name, Price: &req.Price})
}

// UpdateName handles PATCH /service/{id}/name requests.
func (h *ServiceHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	serviceID, ok := h.serviceIDFromPath(w, r)
	if !ok {
		return
	}

	var req UpdateNameRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Name is required")
		return
	}

	h.applyPatch(w, r, serviceID, store.ServicePatch{Name: &req.Name})
}

// UpdatePrice handles PATCH /service/{id}/price requests.
func (h *ServiceHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	serviceID, ok := h.serviceIDFromPath(w, r)
	if !ok {
		return
	}

	var req UpdatePriceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Price is required")
		return
	}

	h.applyPatch(w, r, serviceID, store.ServicePatch{Price: &req.Price})
}

// Delete handles DELETE /service/{id} requests. The deleted record's
// snapshot is returned; deleting the same id again yields 404.
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	serviceID, ok := h.serviceIDFromPath(w, r)
	if !ok {
		return
	}

	service, err := h.serviceStore.DeleteByID(r.Context(), serviceID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("service deleted", slog.String("service_id", serviceID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, ServiceEnvelope{
		Status:  shared.StatusSuccess,
		Service: serviceToResponse(service),
	})
}

// Count handles GET /service/count requests.
func (h *ServiceHandler) Count(w http.ResponseWriter, r *http.Request) {
	total, err := h.serviceStore.Count(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to count services", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CountResponse{ServiceCount: total})
}

// applyPatch runs the shared update flow: patch the record, map the
// outcome, and shape the response.
func (h *ServiceHandler) applyPatch(
	w http.ResponseWriter,
	r *http.Request,
	serviceID uuid.UUID,
	patch store.ServicePatch,
) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	service, err := h.serviceStore.UpdateByID(r.Context(), serviceID, patch)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err),
			GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("service updated", slog.String("service_id", serviceID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, ServiceEnvelope{
		Status:  shared.StatusSuccess,
		Service: serviceToResponse(service),
	})
}

// serviceIDFromPath extracts and structurally validates the {id} path
// parameter. Malformed ids are a client error and must never reach the
// store; on failure the 400 response is written here and ok is false.
func (h *ServiceHandler) serviceIDFromPath(
	w http.ResponseWriter,
	r *http.Request,
) (uuid.UUID, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	raw := chi.URLParam(r, "id")
	if raw == "" {
		log.Warn("service ID not found in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Service ID is required")
		return uuid.Nil, false
	}

	serviceID, err := uuid.Parse(raw)
	if err != nil {
		log.Warn("invalid service ID format", slog.String("service_id", raw))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid service ID")
		return uuid.Nil, false
	}

	return serviceID, true
}
