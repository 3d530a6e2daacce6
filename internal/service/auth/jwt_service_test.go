package auth

import (
	"context"
	"testing"
	"time"

	"github.com/salonworks/catalog-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-32-chars-long!!"

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 60,
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("accepts a sufficiently long secret", func(t *testing.T) {
		service, err := NewJWTService(testAuthConfig())
		require.NoError(t, err)
		assert.NotNil(t, service)
	})

	t.Run("rejects a short secret", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.JWTSecret = "short"

		_, err := NewJWTService(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 characters")
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	service, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	ctx := context.Background()

	token, err := service.GenerateToken(ctx, "owner", RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, "owner", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt))
}

func TestValidateTokenFailures(t *testing.T) {
	t.Parallel()

	service, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("malformed token", func(t *testing.T) {
		_, err := service.ValidateToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		otherCfg := testAuthConfig()
		otherCfg.JWTSecret = "another-secret-that-is-32-chars!!!!"
		other, err := NewJWTService(otherCfg)
		require.NoError(t, err)

		token, err := other.GenerateToken(ctx, "owner", RoleAdmin)
		require.NoError(t, err)

		_, err = service.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		issuer := &hmacJWTService{
			signingKey:    []byte(testSecret),
			tokenLifetime: time.Hour,
			timeFunc: func() time.Time {
				// Issue well in the past, beyond lifetime plus clock skew.
				return time.Now().Add(-3 * time.Hour)
			},
			clockSkew: 2 * time.Minute,
		}

		token, err := issuer.GenerateToken(ctx, "owner", RoleAdmin)
		require.NoError(t, err)

		_, err = service.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("missing token claims", func(t *testing.T) {
		_, err := service.ValidateToken(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestRoleClaimRoundTrip(t *testing.T) {
	t.Parallel()

	service, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	ctx := context.Background()

	for _, role := range []Role{RoleUser, RoleAdmin} {
		token, err := service.GenerateToken(ctx, "someone", role)
		require.NoError(t, err)

		claims, err := service.ValidateToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, role, claims.Role)
	}
}
