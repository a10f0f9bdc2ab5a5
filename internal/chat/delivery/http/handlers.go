package http

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/ai"
	"productivity-assistant/internal/chat"
	"productivity-assistant/internal/middleware"
	"productivity-assistant/internal/model"
	"productivity-assistant/pkg/response"
)

// Message godoc
// @Summary     Send a chat message
// @Description Continues the user's stored conversation and returns the assistant's reply wrapped in a chat envelope. Gateway failures come back as an ERROR envelope, not an HTTP error, so clients render them in the conversation.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Param       body body chat.Message true "Message content"
// @Success     200 {object} response.Resp{data=chat.Response}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/chat/message [POST]
func (h *handler) Message(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	var msg chat.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, sc, ai.ChatInput{Message: msg.Content})
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.OK(c, chat.NewErrorResponse("Sorry, I couldn't process your message. Please try again."))
		return
	}

	response.OK(c, chat.NewChatResponse(output.Reply))
}

// Clear godoc
// @Summary     Clear conversation history
// @Description Discards the user's stored conversation and acknowledges with a SYSTEM envelope.
// @Tags        Chat
// @Produce     json
// @Param       X-User-ID header string true "User ID"
// @Success     200 {object} response.Resp{data=chat.Response}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/chat/clear [POST]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	if err := h.uc.ClearChat(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.ClearChat: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, chat.NewSystemResponse(chat.ClearAck))
}

func (h *handler) scope(c *gin.Context) (model.Scope, bool) {
	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
	}
	return sc, ok
}
