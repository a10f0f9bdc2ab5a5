package http

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route requires an authenticated scope; model-backed routes are also
// rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	ai := rg.Group("/ai", mw.Auth(), mw.RateLimit())
	{
		ai.POST("/summarize", h.Summarize)
		ai.POST("/summarize-note/:id", h.SummarizeNote)
		ai.POST("/generate-tasks", h.GenerateTasks)
		ai.GET("/daily-summary", h.DailySummary)
		ai.POST("/chat", h.Chat)
		ai.GET("/insights", h.Insights)
	}
}
