package http

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/middleware"
)

// RegisterRoutes maps the chat channel routes. Sending a message hits the
// model, so it shares the per-user rate limit with the AI routes; clearing
// does not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chat := rg.Group("/chat", mw.Auth())
	{
		chat.POST("/message", mw.RateLimit(), h.Message)
		chat.POST("/clear", h.Clear)
	}
}
