package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/salonworks/catalog-api/internal/mocks"
	"github.com/salonworks/catalog-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		authHeader      string
		validateErr     error
		claims          *auth.Claims
		expectedStatus  int
		expectedSubject string
	}{
		{
			name:            "valid token",
			authHeader:      "Bearer valid-token",
			claims:          &auth.Claims{Subject: "staff-1", Role: auth.RoleUser},
			expectedStatus:  http.StatusOK,
			expectedSubject: "staff-1",
		},
		{
			name:           "missing auth header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid auth format",
			authHeader:     "InvalidFormat",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing token segment",
			authHeader:     "Bearer ",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer expired-token",
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer invalid-token",
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := &mocks.MockJWTService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}

			m := NewAuthMiddleware(jwtService)

			var capturedSubject string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if claims, ok := GetClaims(r); ok {
					capturedSubject = claims.Subject
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Add("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			m.Authenticate(nextHandler).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedSubject, capturedSubject)
			}
		})
	}
}

func TestAuthMiddleware_AuthenticateRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		authHeader     string
		validateErr    error
		claims         *auth.Claims
		expectedStatus int
	}{
		{
			name:           "admin token passes",
			authHeader:     "Bearer admin-token",
			claims:         &auth.Claims{Subject: "owner", Role: auth.RoleAdmin},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non-admin role is forbidden",
			authHeader:     "Bearer user-token",
			claims:         &auth.Claims{Subject: "staff-1", Role: auth.RoleUser},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "missing token never reaches role check",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token never reaches role check",
			authHeader:     "Bearer bad-token",
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtService := &mocks.MockJWTService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}

			m := NewAuthMiddleware(jwtService)

			var handlerCalled bool
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/service", nil)
			if tt.authHeader != "" {
				req.Header.Add("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			m.AuthenticateRole(auth.RoleAdmin)(nextHandler).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, handlerCalled)
		})
	}
}

func TestGetClaims(t *testing.T) {
	t.Parallel()

	t.Run("context without claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		claims, ok := GetClaims(req)
		assert.False(t, ok)
		assert.Nil(t, claims)
	})

	t.Run("context with claims", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		want := &auth.Claims{Subject: "owner", Role: auth.RoleAdmin}
		req = req.WithContext(withClaims(req.Context(), want))

		claims, ok := GetClaims(req)
		require.True(t, ok)
		assert.Equal(t, want, claims)
	})
}
