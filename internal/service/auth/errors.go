package auth

import "errors"

// Common authentication service errors.
//
// The three token verification failures are distinct so middleware can
// tell them apart in logs; callers map all of them to the same
// externally visible unauthorized outcome.
var (
	// ErrMalformedToken indicates the token string cannot be parsed or decoded.
	ErrMalformedToken = errors.New("authentication token is malformed")

	// ErrInvalidSignature indicates the token's signature check failed.
	ErrInvalidSignature = errors.New("authentication token signature is invalid")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials indicates an unknown username or a password
	// that does not match the stored hash. Deliberately a single error so
	// callers cannot distinguish the two cases.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
