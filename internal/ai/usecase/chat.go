package usecase

import (
	"context"
	"strings"

	"productivity-assistant/internal/ai"
	"productivity-assistant/internal/ai/prompt"
	"productivity-assistant/internal/model"
	"productivity-assistant/internal/session"
)

const emptyMessageReply = "Please provide a message."

// Chat continues the user's stored conversation with a new message.
//
// The history snapshot is taken and the user turn recorded before the gateway
// call, and no session lock is held while the model runs. Concurrent turns
// for the same user interleave in completion order.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input ai.ChatInput) (ai.ChatOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return ai.ChatOutput{Reply: emptyMessageReply}, nil
	}

	history := uc.sessions.History(sc.UserID)
	uc.sessions.Append(sc.UserID, session.RoleUser, input.Message)

	reply, err := uc.complete(ctx, prompt.Build(prompt.Chat{
		Message: input.Message,
		History: history,
	}))
	if err != nil {
		// The user turn stays recorded so the conversation reflects what was
		// asked even when no answer arrived.
		return ai.ChatOutput{}, err
	}

	uc.sessions.Append(sc.UserID, session.RoleAssistant, reply)

	return ai.ChatOutput{Reply: reply}, nil
}

// ChatOnce answers a single message with caller-supplied history. The stored
// conversation is untouched.
func (uc *implUseCase) ChatOnce(ctx context.Context, sc model.Scope, input ai.ChatOnceInput) (ai.ChatOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return ai.ChatOutput{Reply: emptyMessageReply}, nil
	}

	reply, err := uc.complete(ctx, prompt.Build(prompt.Chat{
		Message: input.Message,
		History: input.History,
	}))
	if err != nil {
		return ai.ChatOutput{}, err
	}

	return ai.ChatOutput{Reply: reply}, nil
}

// ClearChat discards the user's stored conversation. Clearing an absent
// conversation succeeds.
func (uc *implUseCase) ClearChat(ctx context.Context, sc model.Scope) error {
	uc.sessions.Clear(sc.UserID)
	uc.l.Infof(ctx, "ClearChat: user=%s", sc.UserID)
	return nil
}
