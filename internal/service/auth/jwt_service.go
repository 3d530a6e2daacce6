package auth

import (
	"context"
	"time"
)

// Role is the access level carried in a verified token's "role" claim.
// The numeric values are part of the token wire format shared with the
// credential issuer, so they must not be renumbered.
type Role int

const (
	// RoleUser is an ordinary authenticated caller.
	RoleUser Role = 1

	// RoleAdmin is the designated administrative role. Only admins may
	// mutate the catalog.
	RoleAdmin Role = 3
)

// Claims holds the verified contents of an authentication token.
type Claims struct {
	// Subject identifies the token holder (issuer-assigned).
	Subject string

	// Role is the access level granted to the holder.
	Role Role

	// IssuedAt is when the token was created.
	IssuedAt time.Time

	// ExpiresAt is when the token expires.
	ExpiresAt time.Time

	// ID is the unique token identifier (jti claim).
	ID string
}

// JWTService defines the interface for token generation and verification.
type JWTService interface {
	// GenerateToken creates a signed token for the given subject and role.
	GenerateToken(ctx context.Context, subject string, role Role) (string, error)

	// ValidateToken verifies a token's signature and time claims against
	// the configured secret and returns the claims if valid.
	// Returns ErrExpiredToken, ErrTokenNotYetValid, or ErrInvalidToken on
	// verification failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
