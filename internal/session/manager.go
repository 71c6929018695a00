package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type Config struct {
	Secret []byte
	TTL    time.Duration

	// Secure marks the cookie HTTPS-only. Off only in local development.
	Secure bool
}

// Manager resolves the per-request session from the cookie and issues new
// sessions on login/register. It is safe for concurrent use; all mutable
// state lives in the Store and in per-request Session handles.
type Manager struct {
	store  Store
	cfg    Config
	logger *slog.Logger
}

func NewManager(store Store, cfg Config, logger *slog.Logger) *Manager {
	return &Manager{
		store:  store,
		cfg:    cfg,
		logger: logger.With("component", "session"),
	}
}

// Session is the request-scoped view of the session state machine: either
// unauthenticated or authenticated with a bound user id. It is not safe for
// concurrent use, which matches its one-request lifetime.
type Session struct {
	m      *Manager
	w      http.ResponseWriter
	id     string // "" until a server-side session exists
	userID uuid.UUID
	bound  bool
}

// Resolve inspects the request cookie and returns the session handle.
// Unknown, expired, or tampered cookies resolve to an unauthenticated
// session; resolution never fails the request.
func (m *Manager) Resolve(r *http.Request, w http.ResponseWriter) *Session {
	s := &Session{m: m, w: w}

	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return s
	}

	sid, ok := parseSessionID(m.cfg.Secret, cookie.Value)
	if !ok {
		m.logger.DebugContext(r.Context(), "discarding unverifiable session cookie")
		return s
	}

	payload, err := m.store.Get(r.Context(), sid)
	if err != nil {
		// ErrSessionNotFound and store outages both resolve to
		// unauthenticated; a read problem must not lock users out of
		// public queries.
		if !errors.Is(err, ErrSessionNotFound) {
			m.logger.ErrorContext(r.Context(), "session lookup", "error", err)
		}
		return s
	}

	s.id = sid
	s.userID = payload.UserID
	s.bound = true

	// Sliding expiry, best effort. The row's TTL is authoritative, so a
	// failed touch only means the session expires a little sooner.
	if err := m.store.Touch(r.Context(), sid, m.cfg.TTL); err != nil {
		m.logger.WarnContext(r.Context(), "session touch", "error", err)
	}

	return s
}

// UserID returns the bound user id, if any.
func (s *Session) UserID() (uuid.UUID, bool) {
	if !s.bound {
		return uuid.UUID{}, false
	}
	return s.userID, true
}

// Bind logs a user into the session: it persists the payload server-side
// and sets the signed cookie. An existing session id is reused so a repeat
// login does not leak abandoned rows. If persisting fails, no cookie is
// written and the session state is unchanged.
func (s *Session) Bind(ctx context.Context, userID uuid.UUID) error {
	sid := s.id
	if sid == "" {
		sid = uuid.NewString()
	}

	if err := s.m.store.Set(ctx, sid, Payload{UserID: userID}, s.m.cfg.TTL); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	value, err := signSessionID(s.m.cfg.Secret, sid)
	if err != nil {
		return fmt.Errorf("sign session cookie: %w", err)
	}

	http.SetCookie(s.w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(s.m.cfg.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.m.cfg.Secure,
	})

	s.id = sid
	s.userID = userID
	s.bound = true
	return nil
}

// Clear logs the user out: the server-side session is destroyed and the
// cookie expired. Clearing an unauthenticated session is a no-op beyond
// the cookie removal.
func (s *Session) Clear(ctx context.Context) error {
	if s.id != "" {
		if err := s.m.store.Destroy(ctx, s.id); err != nil {
			return fmt.Errorf("destroy session: %w", err)
		}
	}

	http.SetCookie(s.w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.m.cfg.Secure,
	})

	s.id = ""
	s.userID = uuid.UUID{}
	s.bound = false
	return nil
}
