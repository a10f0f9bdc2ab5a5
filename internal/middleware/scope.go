package middleware

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/model"
	"productivity-assistant/pkg/response"
)

const scopeKey = "scope"

// Auth resolves the request's user scope from the X-User-ID header, which an
// upstream gateway has already verified. Requests without it are rejected.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID:   userID,
			Username: c.GetHeader("X-Username"),
		})

		c.Next()
	}
}

// ScopeFromContext returns the scope set by Auth.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
