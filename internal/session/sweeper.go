package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/almasbek/forum-api/internal/metrics"
	"github.com/robfig/cron/v3"
)

// expiredDeleter is the one Store capability the sweeper needs. The
// postgres store implements it; the Store interface deliberately does not,
// since request-path code has no business bulk-deleting.
type expiredDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// Sweeper periodically purges expired session rows. Expiry is enforced on
// read, so sweeping only reclaims storage; a missed sweep is harmless.
type Sweeper struct {
	store    expiredDeleter
	schedule cron.Schedule
	logger   *slog.Logger
}

func NewSweeper(store expiredDeleter, scheduleExpr string, logger *slog.Logger) (*Sweeper, error) {
	schedule, err := cron.ParseStandard(scheduleExpr)
	if err != nil {
		return nil, fmt.Errorf("parse sweep schedule: %w", err)
	}

	return &Sweeper{
		store:    store,
		schedule: schedule,
		logger:   logger.With("component", "session_sweeper"),
	}, nil
}

func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Info("session sweeper started")

	for {
		next := s.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("session sweeper shut down")
			return
		case <-timer.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	purged, err := s.store.DeleteExpired(ctx)
	if err != nil {
		s.logger.Error("sweep expired sessions", "error", err)
		return
	}
	if purged > 0 {
		metrics.SessionsPurgedTotal.Add(float64(purged))
		s.logger.Info("purged expired sessions", "count", purged)
	}
}
