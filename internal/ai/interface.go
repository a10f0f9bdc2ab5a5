package ai

import (
	"context"

	"productivity-assistant/internal/model"
)

// Gateway is the single seam to the language model. Implementations own
// transport, provider selection, and retry; callers only see the completion
// text or an error.
type Gateway interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// UseCase defines the business logic interface for the AI domain.
type UseCase interface {
	// Summarize returns a concise summary of the given text.
	Summarize(ctx context.Context, sc model.Scope, input SummarizeInput) (SummarizeOutput, error)

	// SummarizeNote summarizes the content of one of the user's notes and
	// stores the result on the note.
	SummarizeNote(ctx context.Context, sc model.Scope, noteID string) (SummarizeNoteOutput, error)

	// GenerateTasks extracts actionable task titles from free text and
	// optionally creates them as pending tasks.
	GenerateTasks(ctx context.Context, sc model.Scope, input GenerateTasksInput) (GenerateTasksOutput, error)

	// DailySummary generates a motivational summary of today's activity.
	DailySummary(ctx context.Context, sc model.Scope) (DailySummaryOutput, error)

	// Insights generates productivity recommendations from the user's recent
	// notes and tasks.
	Insights(ctx context.Context, sc model.Scope) (InsightsOutput, error)

	// Chat continues the user's stored conversation with a new message.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// ChatOnce answers a single message with caller-supplied history, without
	// touching the stored conversation.
	ChatOnce(ctx context.Context, sc model.Scope, input ChatOnceInput) (ChatOutput, error)

	// ClearChat discards the user's stored conversation.
	ClearChat(ctx context.Context, sc model.Scope) error
}
