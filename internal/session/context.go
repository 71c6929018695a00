package session

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// WithSession returns a copy of ctx carrying the request's session handle.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext extracts the session handle. Returns nil outside a request
// that passed through the session middleware.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}

// UserIDFromContext is a convenience for callers that only need the bound
// identity.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	s := FromContext(ctx)
	if s == nil {
		return uuid.UUID{}, false
	}
	return s.UserID()
}
