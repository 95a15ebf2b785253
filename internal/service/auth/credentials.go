package auth

import (
	"context"
	"errors"

	"github.com/notekeeper/notes-api/internal/domain"
	"github.com/notekeeper/notes-api/internal/platform/logger"
	"github.com/notekeeper/notes-api/internal/store"
)

// CredentialService manages user registration and password verification
// on top of a UserStore and a PasswordHasher.
type CredentialService struct {
	users  store.UserStore
	hasher PasswordHasher
}

// NewCredentialService creates a new CredentialService with the given
// dependencies.
func NewCredentialService(users store.UserStore, hasher PasswordHasher) *CredentialService {
	return &CredentialService{
		users:  users,
		hasher: hasher,
	}
}

// Register hashes the password and persists a new user.
// Returns store.ErrUsernameExists if the username is already taken, or
// domain validation errors for invalid input. On success the created
// user carries its generated ID.
func (s *CredentialService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	user, err := domain.NewUser(username, password)
	if err != nil {
		return nil, err
	}

	user.HashedPassword, err = s.hasher.Hash(user.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err, "username", user.Username)
		return nil, err
	}
	// The plaintext has served its purpose.
	user.Password = ""

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Verify checks a username/password pair against the stored hash.
// Returns ErrInvalidCredentials when the username is unknown or the
// password does not match; an unknown username and a wrong password are
// indistinguishable to the caller. On success it returns the user's ID.
func (s *CredentialService) Verify(ctx context.Context, username, password string) (int64, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return 0, ErrInvalidCredentials
		}
		log.Error("failed to load user for verification", "error", err, "username", username)
		return 0, err
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		return 0, ErrInvalidCredentials
	}

	return user.ID, nil
}
