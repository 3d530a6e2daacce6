package mocks

import (
	"context"

	"github.com/salonworks/catalog-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	// Custom behavior functions
	GenerateTokenFn func(ctx context.Context, subject string, role auth.Role) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default response values
	Token       string
	GenerateErr error
	Claims      *auth.Claims
	ValidateErr error
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements the auth.JWTService interface.
func (m *MockJWTService) GenerateToken(
	ctx context.Context,
	subject string,
	role auth.Role,
) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, subject, role)
	}
	if m.GenerateErr != nil {
		return "", m.GenerateErr
	}
	return m.Token, nil
}

// ValidateToken implements the auth.JWTService interface.
func (m *MockJWTService) ValidateToken(
	ctx context.Context,
	tokenString string,
) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	return m.Claims, nil
}
