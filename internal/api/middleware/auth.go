package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/salonworks/catalog-api/internal/api/shared"
	"github.com/salonworks/catalog-api/internal/redact"
	"github.com/salonworks/catalog-api/internal/service/auth"
)

// AuthMiddleware provides JWT authentication and role checks for routes.
//
// The role check is only reachable through AuthenticateRole, which runs
// token verification first in the same handler. There is no standalone
// role middleware, so an authorize step can never be registered without
// (or before) the authenticate step.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates JWT tokens from the Authorization header and
// adds the verified claims to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.verify(w, r)
		if !ok {
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

// AuthenticateRole validates JWT tokens and then requires the verified
// role claim to equal role. Requests with a valid token but a different
// role receive 403.
func (m *AuthMiddleware) AuthenticateRole(role auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := m.verify(w, r)
			if !ok {
				return
			}

			if claims.Role != role {
				slog.Debug("role check failed",
					"subject", claims.Subject,
					"role", int(claims.Role),
					"required_role", int(role),
					"path", r.URL.Path)
				shared.RespondWithError(w, r, http.StatusForbidden, "Insufficient role")
				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

// verify extracts and validates the bearer token. On failure it writes
// the 401 response itself and returns ok=false.
func (m *AuthMiddleware) verify(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
		return nil, false
	}

	claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
	if err != nil {
		switch err {
		case auth.ErrExpiredToken:
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
		case auth.ErrInvalidToken, auth.ErrTokenNotYetValid:
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		default:
			slog.Error("failed to validate token", "error", redact.Error(err))
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
		}
		return nil, false
	}

	return claims, true
}

func withClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, shared.ClaimsContextKey, claims)
}

// GetClaims extracts the verified token claims from the request context.
// Returns the claims and a boolean indicating if they were found.
func GetClaims(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(shared.ClaimsContextKey).(*auth.Claims)
	return claims, ok
}
