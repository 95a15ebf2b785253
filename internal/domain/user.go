package domain

import "strings"

// User represents a registered user of the notes service.
// IDs are database-generated; callers create users with a zero ID and
// receive the assigned one back from the store.
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Password       string `json:"-"` // Plaintext, only populated transiently during registration
	HashedPassword string `json:"-"` // Never exposed in JSON
}

// NewUser creates a new User with the given username and plaintext password.
// The caller is responsible for hashing the password before storing the user.
// Returns an error if validation fails.
func NewUser(username, password string) (*User, error) {
	user := &User{
		Username: strings.TrimSpace(username),
		Password: password,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if len(u.Username) > 64 {
		return ErrUsernameTooLong
	}

	if u.Password != "" {
		// bcrypt silently truncates beyond 72 bytes; reject instead.
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
		return nil
	}

	// Users loaded from storage carry only the hash.
	if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}
