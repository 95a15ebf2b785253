package mocks

import (
	"context"

	"github.com/notekeeper/notes-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	// Token is returned by GenerateToken when GenerateFn is nil.
	Token string
	// Claims is returned by ValidateToken when ValidateFn is nil.
	Claims *auth.Claims
	// GenerateErr / ValidateErr are the default errors.
	GenerateErr error
	ValidateErr error

	// Custom behavior overrides
	GenerateFn func(ctx context.Context, userID int64) (string, error)
	ValidateFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements auth.JWTService.
func (m *MockJWTService) GenerateToken(ctx context.Context, userID int64) (string, error) {
	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, userID)
	}
	return m.Token, m.GenerateErr
}

// ValidateToken implements auth.JWTService.
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateFn != nil {
		return m.ValidateFn(ctx, tokenString)
	}
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	return m.Claims, nil
}
