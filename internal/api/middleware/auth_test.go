package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notekeeper/notes-api/internal/api/shared"
	"github.com/notekeeper/notes-api/internal/mocks"
	"github.com/notekeeper/notes-api/internal/platform/metrics"
	"github.com/notekeeper/notes-api/internal/service/auth"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	userID := int64(42)

	tests := []struct {
		name           string
		authHeader     string
		validateErr    error
		claims         *auth.Claims
		expectedStatus int
		expectedUserID int64
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer valid-token",
			claims:         &auth.Claims{UserID: userID},
			expectedStatus: http.StatusOK,
			expectedUserID: userID,
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
			name:           "wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer expired-token",
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "tampered signature",
			authHeader:     "Bearer tampered-token",
			validateErr:    auth.ErrInvalidSignature,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed token",
			authHeader:     "Bearer not-a-jwt",
			validateErr:    auth.ErrMalformedToken,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}
			mw := NewAuthMiddleware(jwtService, metrics.NewTestInstrumentation())

			var capturedUserID int64
			var nextCalled bool
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				capturedUserID, _ = shared.UserID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			recorder := httptest.NewRecorder()

			mw.Authenticate(nextHandler).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedStatus == http.StatusOK {
				require.True(t, nextCalled, "next handler should run for valid tokens")
				assert.Equal(t, tt.expectedUserID, capturedUserID)
			} else {
				assert.False(t, nextCalled, "next handler must not run on rejection")
				assert.Contains(t, recorder.Body.String(), "Unauthorized")
			}
		})
	}
}

func TestAuthMiddleware_NilInstrumentation(t *testing.T) {
	t.Parallel()

	// A nil instrumentation must not panic on rejection.
	mw := NewAuthMiddleware(&mocks.MockJWTService{ValidateErr: auth.ErrMalformedToken}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("Authorization", "Bearer junk")
	recorder := httptest.NewRecorder()

	mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not run")
	})).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
