package http

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/pkg/response"
)

// Summarize godoc
// @Summary     Summarize text
// @Description Returns a concise AI-generated summary of the provided text.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Param       body body summarizeReq true "Text to summarize"
// @Success     200 {object} response.Resp{data=summarizeResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Model Unavailable"
// @Router      /api/ai/summarize [POST]
func (h *handler) Summarize(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processSummarizeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Summarize(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Summarize: %v", err)
		h.respondError(c, ctx, err)
		return
	}

	response.OK(c, summarizeResp{Summary: output.Summary})
}

// SummarizeNote godoc
// @Summary     Summarize a note
// @Description Summarizes one of the user's notes and stores the summary on it.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Param       id path string true "Note ID"
// @Success     200 {object} response.Resp{data=summarizeNoteResp}
// @Failure     404 {object} response.Resp "Note Not Found"
// @Failure     503 {object} response.Resp "Model Unavailable"
// @Router      /api/ai/summarize-note/{id} [POST]
func (h *handler) SummarizeNote(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	output, err := h.uc.SummarizeNote(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.SummarizeNote: %v", err)
		h.respondError(c, ctx, err)
		return
	}

	response.OK(c, summarizeNoteResp{NoteID: output.Note.ID, Summary: output.Summary})
}

// GenerateTasks godoc
// @Summary     Generate tasks from text
// @Description Extracts actionable task titles from free text, optionally creating them as pending tasks.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Param       body body generateTasksReq true "Source text and auto-create flag"
// @Success     200 {object} response.Resp{data=generateTasksResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Model Unavailable"
// @Router      /api/ai/generate-tasks [POST]
func (h *handler) GenerateTasks(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processGenerateTasksReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GenerateTasks(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateTasks: %v", err)
		h.respondError(c, ctx, err)
		return
	}

	response.OK(c, h.newGenerateTasksResp(output))
}

// DailySummary godoc
// @Summary     Daily productivity summary
// @Description Returns an AI-generated motivational summary of today's activity with stats.
// @Tags        AI
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Success     200 {object} response.Resp{data=dailySummaryResp}
// @Failure     503 {object} response.Resp "Model Unavailable"
// @Router      /api/ai/daily-summary [GET]
func (h *handler) DailySummary(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	output, err := h.uc.DailySummary(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.DailySummary: %v", err)
		h.respondError(c, ctx, err)
		return
	}

	response.OK(c, h.newDailySummaryResp(output))
}

// Chat godoc
// @Summary     Stateless chat
// @Description Answers a single message with caller-supplied conversation history.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Param       body body chatReq true "Message and optional history"
// @Success     200 {object} response.Resp{data=chatResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "Model Unavailable"
// @Router      /api/ai/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ChatOnce(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ChatOnce: %v", err)
		h.respondError(c, ctx, err)
		return
	}

	response.OK(c, chatResp{Reply: output.Reply})
}

// Insights godoc
// @Summary     Productivity insights
// @Description Returns AI-generated recommendations based on the user's recent notes and tasks.
// @Tags        AI
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Success     200 {object} response.Resp{data=insightsResp}
// @Failure     503 {object} response.Resp "Model Unavailable"
// @Router      /api/ai/insights [GET]
func (h *handler) Insights(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	output, err := h.uc.Insights(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Insights: %v", err)
		h.respondError(c, ctx, err)
		return
	}

	response.OK(c, insightsResp{Insights: output.Insights})
}
