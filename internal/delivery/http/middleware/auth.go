package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"conferencecentral/internal/domain"
)

type contextKey string

const userIDKey contextKey = "userID"

// SetUserID returns a context with the user ID set. Used by the identity
// middleware and by tests.
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID from the context.
// ok is false when no identity was resolved for the request.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// Authenticate resolves the request's bearer credential to a user identity
// and stores it in the request context. It never rejects a request: an
// absent or unresolvable credential leaves the identity empty and the
// authorization checks in the services fail the request instead. Read-only
// operations that need no identity pass through untouched.
func Authenticate(verifier domain.TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			userID, err := verifier.Verify(r.Context(), token)
			if err != nil {
				logger.DebugContext(r.Context(), "identity resolution failed", "err", err)
				next.ServeHTTP(w, r)
				return
			}
			if userID != "" {
				r = r.WithContext(SetUserID(r.Context(), userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
