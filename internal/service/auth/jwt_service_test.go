package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notekeeper/notes-api/internal/config"
)

const (
	testSecret      = "test-secret-that-is-long-enough-for-testing"
	testWrongSecret = "wrong-secret-that-is-long-enough-for-testing"
)

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		svc, err := NewJWTService(config.AuthConfig{
			JWTSecret:            testSecret,
			TokenLifetimeMinutes: 60,
		})
		require.NoError(t, err)
		require.NotNil(t, svc)
	})

	t.Run("secret too short", func(t *testing.T) {
		t.Parallel()
		svc, err := NewJWTService(config.AuthConfig{
			JWTSecret:            "short",
			TokenLifetimeMinutes: 60,
		})
		assert.Error(t, err)
		assert.Nil(t, svc)
	})
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute
	userID := int64(42)

	svc := NewTestJWTService(testSecret, tokenLifetime, func() time.Time {
		return fixedTime
	})

	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "42", claims.Subject)
	// Compare Unix timestamps to avoid timezone issues
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(tokenLifetime).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute
	userID := int64(7)

	tests := []struct {
		name      string
		setupFunc func() (JWTService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func() (JWTService, string) {
				svc := NewTestJWTService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				token, _ := svc.GenerateToken(context.Background(), userID)
				return svc, token
			},
			wantErr: nil,
		},
		{
			name: "expired token",
			setupFunc: func() (JWTService, string) {
				genSvc := NewTestJWTService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				token, _ := genSvc.GenerateToken(context.Background(), userID)

				// Validate after the lifetime has passed.
				valSvc := NewTestJWTService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime.Add(tokenLifetime + time.Minute)
				})
				return valSvc, token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "expired token with valid signature stays expired",
			setupFunc: func() (JWTService, string) {
				genSvc := NewTestJWTService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				token, _ := genSvc.GenerateToken(context.Background(), userID)

				valSvc := NewTestJWTService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime.Add(48 * time.Hour)
				})
				return valSvc, token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "signature from different secret",
			setupFunc: func() (JWTService, string) {
				genSvc := NewTestJWTService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				token, _ := genSvc.GenerateToken(context.Background(), userID)

				valSvc := NewTestJWTService(testWrongSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				return valSvc, token
			},
			wantErr: ErrInvalidSignature,
		},
		{
			name: "tampered signature byte",
			setupFunc: func() (JWTService, string) {
				svc := NewTestJWTService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				token, _ := svc.GenerateToken(context.Background(), userID)
				return svc, tamperSignature(t, token)
			},
			wantErr: ErrInvalidSignature,
		},
		{
			name: "malformed token",
			setupFunc: func() (JWTService, string) {
				svc := NewTestJWTService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				return svc, "this.is.not.a.valid.jwt.token"
			},
			wantErr: ErrMalformedToken,
		},
		{
			name: "empty token",
			setupFunc: func() (JWTService, string) {
				svc := NewTestJWTService(testSecret, tokenLifetime, func() time.Time {
					return fixedTime
				})
				return svc, ""
			},
			wantErr: ErrMalformedToken,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, token := tt.setupFunc()
			claims, err := svc.ValidateToken(context.Background(), token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, claims)
				assert.Equal(t, userID, claims.UserID)
			}
		})
	}
}

// tamperSignature flips one character in the signature segment of a JWT,
// keeping the header and payload intact.
func tamperSignature(t *testing.T, token string) string {
	t.Helper()

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	require.NotEmpty(t, sig)
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}

	return parts[0] + "." + parts[1] + "." + string(sig)
}
