package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/almasbek/forum-api/internal/session"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionStore implements session.Store on Postgres. Expiry is enforced in
// every read, so a row past its TTL is indistinguishable from a deleted
// one; the sweeper merely reclaims the storage later.
type SessionStore struct {
	pool *pgxpool.Pool
}

func NewSessionStore(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{pool: pool}
}

func (s *SessionStore) Get(ctx context.Context, sid string) (session.Payload, error) {
	query := `SELECT user_id FROM sessions WHERE id = $1 AND expires_at > now()`

	var payload session.Payload
	err := s.pool.QueryRow(ctx, query, sid).Scan(&payload.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return session.Payload{}, session.ErrSessionNotFound
		}
		return session.Payload{}, fmt.Errorf("get session: %w", err)
	}
	return payload, nil
}

func (s *SessionStore) Set(ctx context.Context, sid string, payload session.Payload, ttl time.Duration) error {
	query := `
		INSERT INTO sessions (id, user_id, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET user_id = EXCLUDED.user_id, expires_at = EXCLUDED.expires_at`

	_, err := s.pool.Exec(ctx, query, sid, payload.UserID, time.Now().Add(ttl))
	if err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func (s *SessionStore) Touch(ctx context.Context, sid string, ttl time.Duration) error {
	query := `UPDATE sessions SET expires_at = $2 WHERE id = $1 AND expires_at > now()`

	_, err := s.pool.Exec(ctx, query, sid, time.Now().Add(ttl))
	if err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	return nil
}

func (s *SessionStore) Destroy(ctx context.Context, sid string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, sid)
	if err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// DeleteExpired removes rows whose TTL has lapsed and reports how many.
func (s *SessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
