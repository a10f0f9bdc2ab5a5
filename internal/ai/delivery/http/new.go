package http

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/ai"
	"productivity-assistant/pkg/log"
)

// Handler is the public interface for the AI HTTP delivery layer.
type Handler interface {
	Summarize(c *gin.Context)
	SummarizeNote(c *gin.Context)
	GenerateTasks(c *gin.Context)
	DailySummary(c *gin.Context)
	Chat(c *gin.Context)
	Insights(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc ai.UseCase
}

// New creates a new HTTP handler for the AI domain.
func New(l log.Logger, uc ai.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
