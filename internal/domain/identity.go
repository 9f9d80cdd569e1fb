package domain

import "context"

// TokenVerifier resolves a bearer credential to a stable user identity.
//
// An empty userID with a nil error means the credential could not be
// resolved; callers must treat the request as unauthenticated rather than
// failed. A non-nil error is reserved for faults outside the credential
// itself (for example a cancelled context).
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (userID string, err error)
}
