package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token containing the user's
	// identity. Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Validation is pure: a signature check plus an expiry
	// comparison, with no store lookups. Returns ErrMalformedToken,
	// ErrInvalidSignature or ErrExpiredToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for the JWT tokens.
// It extends standard JWT registered claims with the user identity.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID int64 `json:"uid"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
