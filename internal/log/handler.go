package log

import (
	"context"
	"log/slog"

	"github.com/almasbek/forum-api/internal/requestid"
	"github.com/almasbek/forum-api/internal/session"
)

// ContextHandler wraps an slog.Handler and enriches every record with
// request-scoped values: the request id and, when a session is bound, the
// acting user id. Credentials never reach the logger in the first place.
type ContextHandler struct {
	inner slog.Handler
}

func NewContextHandler(inner slog.Handler) *ContextHandler {
	return &ContextHandler{inner: inner}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := requestid.FromContext(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}
	if userID, ok := session.UserIDFromContext(ctx); ok {
		r.AddAttrs(slog.String("user_id", userID.String()))
	}
	return h.inner.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{inner: h.inner.WithGroup(name)}
}
