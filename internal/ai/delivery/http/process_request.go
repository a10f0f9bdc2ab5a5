package http

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/middleware"
	"productivity-assistant/internal/model"
	"productivity-assistant/pkg/response"
)

// scope extracts the authenticated user scope. Routes are registered behind
// the Auth middleware, so a missing scope is a wiring bug surfaced as 401.
func (h *handler) scope(c *gin.Context) (model.Scope, bool) {
	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
	}
	return sc, ok
}

// processSummarizeReq binds the summarize request body.
func (h *handler) processSummarizeReq(c *gin.Context) (summarizeReq, error) {
	var req summarizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processGenerateTasksReq binds the generate-tasks request body.
func (h *handler) processGenerateTasksReq(c *gin.Context) (generateTasksReq, error) {
	var req generateTasksReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processChatReq binds the stateless chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
