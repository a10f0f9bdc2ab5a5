package ai

import (
	"productivity-assistant/internal/model"
	"productivity-assistant/internal/session"
)

// SummarizeInput is the input for text summarization.
type SummarizeInput struct {
	Text string
}

// SummarizeOutput is the result of text summarization.
type SummarizeOutput struct {
	Summary string
}

// SummarizeNoteOutput is the result of summarizing a stored note.
type SummarizeNoteOutput struct {
	Note    model.Note
	Summary string
}

// GenerateTasksInput is the input for task generation.
type GenerateTasksInput struct {
	Text       string
	AutoCreate bool // create the extracted tasks as pending tasks
}

// GenerateTasksOutput is the result of task generation.
type GenerateTasksOutput struct {
	Tasks   []string     // extracted task titles, in model output order
	Created []model.Task // persisted tasks when AutoCreate is set
}

// Digest is the numeric snapshot of today's activity.
type Digest struct {
	CompletedTasks int
	PendingTasks   int
	NotesCreated   int
}

// DailySummaryOutput is the result of the daily summary operation.
type DailySummaryOutput struct {
	Summary string
	Stats   string
	Digest  Digest
}

// InsightsOutput is the result of the insights operation.
type InsightsOutput struct {
	Insights string
}

// ChatInput is the input for a session-backed chat turn.
type ChatInput struct {
	Message string
}

// ChatOnceInput is the input for a stateless chat turn.
type ChatOnceInput struct {
	Message string
	History []session.Turn
}

// ChatOutput is the assistant's reply.
type ChatOutput struct {
	Reply string
}
