// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the base error for all domain validation failures.
// Specific validation errors wrap it so callers can match the whole
// category with errors.Is.
var ErrValidation = errors.New("validation failed")

// Common domain errors used across the application.
var (
	// ErrEmptyUsername is returned when a username is empty.
	ErrEmptyUsername = fmt.Errorf("%w: username cannot be empty", ErrValidation)

	// ErrUsernameTooLong is returned when a username exceeds the column limit.
	ErrUsernameTooLong = fmt.Errorf("%w: username must be at most 64 characters long", ErrValidation)

	// ErrEmptyPassword is returned when a password is empty.
	ErrEmptyPassword = fmt.Errorf("%w: password cannot be empty", ErrValidation)

	// ErrPasswordTooLong is returned when a password exceeds bcrypt's 72-byte limit.
	ErrPasswordTooLong = fmt.Errorf("%w: password must be at most 72 bytes long", ErrValidation)

	// ErrEmptyHashedPassword is returned when a stored user has no password hash.
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)

	// ErrEmptyTitle is returned when a note title is empty.
	ErrEmptyTitle = fmt.Errorf("%w: note title cannot be empty", ErrValidation)

	// ErrEmptyContents is returned when a note body is empty.
	ErrEmptyContents = fmt.Errorf("%w: note contents cannot be empty", ErrValidation)

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)
