package http

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/ai"
	"productivity-assistant/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Message(c *gin.Context)
	Clear(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc ai.UseCase
}

// New creates a new HTTP handler for the chat channel.
func New(l log.Logger, uc ai.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
