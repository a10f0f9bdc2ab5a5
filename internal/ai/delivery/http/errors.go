package http

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/ai"
	noteRepo "productivity-assistant/internal/note/repository"
	"productivity-assistant/pkg/response"
)

// respondError translates domain/use-case errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, ctx context.Context, err error) {
	switch {
	case errors.Is(err, ai.ErrModelUnavailable):
		response.ServiceUnavailable(c, ai.ErrModelUnavailable)
	case errors.Is(err, noteRepo.ErrNoteNotFound):
		response.NotFound(c, err)
	default:
		h.l.Errorf(ctx, "unhandled error: %v", err)
		response.InternalError(c, err)
	}
}
