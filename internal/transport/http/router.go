package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/almasbek/forum-api/internal/session"
	"github.com/almasbek/forum-api/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

// NewRouter wires the middleware chain and mounts the GraphQL endpoint.
// The session middleware runs last so every resolver sees the resolved
// identity; it never rejects a request on its own.
func NewRouter(logger *slog.Logger, sessions *session.Manager, gql http.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())
	r.Use(session.Middleware(sessions))

	r.POST("/graphql", gin.WrapH(gql))

	return r
}
