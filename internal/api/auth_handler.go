package api

import (
	"errors"
	"net/http"

	"github.com/notekeeper/notes-api/internal/api/shared"
	"github.com/notekeeper/notes-api/internal/platform/logger"
	"github.com/notekeeper/notes-api/internal/service/auth"
)

// AuthHandler handles registration and login requests.
type AuthHandler struct {
	credentials *auth.CredentialService
	jwtService  auth.JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(credentials *auth.CredentialService, jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{
		credentials: credentials,
		jwtService:  jwtService,
	}
}

// Register handles POST /api/users/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.credentials.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		status := MapErrorToStatusCode(err)
		if status == http.StatusInternalServerError {
			shared.RespondWithErrorAndLog(w, r, status, "Failed to register user", err)
			return
		}
		shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
		return
	}

	log := logger.FromContext(r.Context())
	log.Info("user registered", "user_id", user.ID, "username", user.Username)

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}

// Login handles POST /api/users/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	userID, err := h.credentials.Verify(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			// Unknown username and wrong password produce the same response.
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to authenticate user", err)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to generate authentication token", err)
		return
	}

	log := logger.FromContext(r.Context())
	log.Info("user logged in", "user_id", userID)

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{Token: token})
}
