package mocks

import (
	"errors"

	"github.com/notekeeper/notes-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher without the cost of
// real bcrypt. Hash prefixes the password; Compare checks the prefix.
type MockPasswordHasher struct {
	// ShouldSucceed forces Compare to pass or fail regardless of input.
	ShouldSucceed bool
	// HashErr, when set, is returned by Hash.
	HashErr error
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements auth.PasswordHasher.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return "hashed:" + password, nil
}

// Compare implements auth.PasswordHasher.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.ShouldSucceed {
		return nil
	}
	if hashedPassword == "hashed:"+password {
		return nil
	}
	return errors.New("password mismatch")
}
