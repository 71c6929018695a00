// Package session binds an opaque, cookie-carried session id to an
// authenticated user id. The cookie never holds user data; all session
// state lives server-side behind the Store interface.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// CookieName is the fixed name of the session cookie.
const CookieName = "qid"

// ErrSessionNotFound is returned by Store.Get for unknown or expired ids.
var ErrSessionNotFound = errors.New("session not found")

// Payload is everything a session carries: the bound user.
type Payload struct {
	UserID uuid.UUID
}

// Store persists sessions keyed by opaque id. Implementations own expiry:
// Get must not return a session past its TTL.
type Store interface {
	Get(ctx context.Context, sid string) (Payload, error)

	// Set creates or replaces the session and resets its TTL.
	Set(ctx context.Context, sid string, payload Payload, ttl time.Duration) error

	// Touch extends the TTL of an existing session without rewriting the
	// payload. Touching an unknown session is not an error.
	Touch(ctx context.Context, sid string, ttl time.Duration) error

	// Destroy removes the session. Destroying an unknown session is a no-op.
	Destroy(ctx context.Context, sid string) error
}
