package domain

import "errors"

// Sentinel errors shared across services. Services wrap these with context
// via fmt.Errorf("...: %w", Err...) and the HTTP layer maps them to status
// codes with errors.Is.
var (
	ErrUnauthorized = errors.New("authorization required")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)
