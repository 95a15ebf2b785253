package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/notekeeper/notes-api/internal/api/shared"
	"github.com/notekeeper/notes-api/internal/platform/logger"
	"github.com/notekeeper/notes-api/internal/platform/metrics"
	"github.com/notekeeper/notes-api/internal/service/auth"
)

// AuthMiddleware provides JWT authentication for routes.
//
// Per request it walks a short chain: no token, malformed, bad
// signature, expired, or valid. Every failure looks the same to the
// client (401 with a JSON error body); the discriminating detail goes
// to the logs only.
type AuthMiddleware struct {
	jwtService auth.JWTService
	instr      *metrics.Instrumentation
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
// instr may be nil when metrics are not wired (tests).
func NewAuthMiddleware(jwtService auth.JWTService, instr *metrics.Instrumentation) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		instr:      instr,
	}
}

// Authenticate validates JWT tokens from the Authorization header and
// adds the user ID to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			m.reject(w, r, log, "missing authorization header", nil)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			m.reject(w, r, log, "invalid authorization format", auth.ErrMissingToken)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				m.reject(w, r, log, "expired token", err)
			case errors.Is(err, auth.ErrInvalidSignature):
				m.reject(w, r, log, "invalid token signature", err)
			case errors.Is(err, auth.ErrMalformedToken):
				m.reject(w, r, log, "malformed token", err)
			default:
				m.reject(w, r, log, "token validation failed", err)
			}
			return
		}

		// Attach the verified identity; single-request scope, no shared state.
		ctx := shared.WithUserID(r.Context(), claims.UserID)
		ctx = logger.WithLogger(ctx, log.With(slog.Int64("user_id", claims.UserID)))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// reject writes the uniform unauthorized response. The reason only
// appears in logs, never in the response body.
func (m *AuthMiddleware) reject(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
	reason string,
	err error,
) {
	attrs := []any{
		slog.String("reason", reason),
		slog.String("path", r.URL.Path),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	log.Debug("unauthorized request", attrs...)

	if m.instr != nil {
		m.instr.CounterAuthFailures.Inc()
	}

	shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
}
