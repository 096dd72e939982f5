package apperr

import "errors"

// Error kinds shared by every layer. Repositories and services wrap these
// with %w so the HTTP error handler can map them to a status code without
// knowing which entity produced them.
var (
	// ErrNotFound covers both "row absent" and "row owned by another user".
	// Cross-tenant access must never be distinguishable from absence.
	ErrNotFound = errors.New("not found")

	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("expired signature")
	ErrTokenCreation      = errors.New("token creation error")
)
