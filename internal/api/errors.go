package api

import (
	"errors"
	"net/http"

	"github.com/salonworks/catalog-api/internal/api/shared"
	"github.com/salonworks/catalog-api/internal/service/auth"
	"github.com/salonworks/catalog-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, shared.ErrLimitTooLarge):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal
// details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"

	case errors.Is(err, auth.ErrMissingToken):
		return "Authentication required"

	case errors.Is(err, store.ErrServiceNotFound):
		return "Service not found"

	case store.IsNotFoundError(err):
		return "Not found"

	case errors.Is(err, store.ErrDuplicate):
		return "Service already exists"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid service data"

	case errors.Is(err, shared.ErrLimitTooLarge):
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}
