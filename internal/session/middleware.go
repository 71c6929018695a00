package session

import "github.com/gin-gonic/gin"

// Middleware resolves the session for every request and exposes it through
// the request context. Downstream resolvers read identity from there; no
// identity state lives anywhere else.
func Middleware(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := m.Resolve(c.Request, c.Writer)
		ctx := WithSession(c.Request.Context(), s)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
