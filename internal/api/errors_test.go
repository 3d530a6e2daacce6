package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/salonworks/catalog-api/internal/api/shared"
	"github.com/salonworks/catalog-api/internal/service/auth"
	"github.com/salonworks/catalog-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid token", err: auth.ErrInvalidToken, want: http.StatusUnauthorized},
		{name: "expired token", err: auth.ErrExpiredToken, want: http.StatusUnauthorized},
		{name: "missing token", err: auth.ErrMissingToken, want: http.StatusUnauthorized},
		{name: "service not found", err: store.ErrServiceNotFound, want: http.StatusNotFound},
		{
			name: "wrapped not found",
			err:  fmt.Errorf("lookup: %w", store.ErrServiceNotFound),
			want: http.StatusNotFound,
		},
		{name: "duplicate", err: store.ErrDuplicate, want: http.StatusConflict},
		{name: "invalid entity", err: store.ErrInvalidEntity, want: http.StatusBadRequest},
		{name: "limit too large", err: shared.ErrLimitTooLarge, want: http.StatusBadRequest},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Invalid token", GetSafeErrorMessage(auth.ErrExpiredToken))
	assert.Equal(t, "Service not found", GetSafeErrorMessage(store.ErrServiceNotFound))
	assert.Equal(t, "Invalid service data", GetSafeErrorMessage(store.ErrInvalidEntity))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))

	// Internal details never surface in the safe message.
	internal := errors.New("dial tcp: postgres://u:p@db:5432 refused")
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(internal))
}
