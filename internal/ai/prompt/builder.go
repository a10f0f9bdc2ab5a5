// Package prompt renders domain data into the text prompts sent to the model
// gateway. Building is pure and deterministic: the same request always yields
// the same prompt, and no request ever fails to render.
package prompt

import (
	"fmt"
	"strings"

	"productivity-assistant/internal/session"
)

// Request is the closed set of prompt kinds. Each variant carries only the
// payload its template needs.
type Request interface {
	promptRequest()
}

// Summarize asks for a concise summary of free text.
type Summarize struct {
	Text string
}

// GenerateTasks asks for a numbered action-item list extracted from free text.
type GenerateTasks struct {
	Text string
}

// Digest is the numeric snapshot feeding a daily summary.
type Digest struct {
	CompletedTasks int
	PendingTasks   int
	NotesCreated   int
}

// DailySummary asks for a motivational summary of today's activity.
type DailySummary struct {
	Digest Digest
}

// Chat continues a conversation: prior turns plus the new user message.
type Chat struct {
	Message string
	History []session.Turn
}

// Insights asks for cross-entity recommendations over note and task snippets.
type Insights struct {
	NoteSnippets string
	TaskSnippets string
}

func (Summarize) promptRequest()     {}
func (GenerateTasks) promptRequest() {}
func (DailySummary) promptRequest()  {}
func (Chat) promptRequest()          {}
func (Insights) promptRequest()      {}

// Build renders the request into its prompt text.
func Build(req Request) string {
	switch r := req.(type) {
	case Summarize:
		return fmt.Sprintf(summarizeTemplate, r.Text)

	case GenerateTasks:
		return fmt.Sprintf(generateTasksTemplate, r.Text)

	case DailySummary:
		return fmt.Sprintf(dailySummaryTemplate,
			r.Digest.CompletedTasks, r.Digest.PendingTasks, r.Digest.NotesCreated)

	case Chat:
		return buildChat(r)

	case Insights:
		notes := r.NoteSnippets
		if notes == "" {
			notes = placeholderNoNotes
		}
		tasks := r.TaskSnippets
		if tasks == "" {
			tasks = placeholderNoTasks
		}
		return fmt.Sprintf(insightsTemplate, notes, tasks)

	default:
		// Unreachable for requests constructed from this package.
		return ""
	}
}

func buildChat(r Chat) string {
	var sb strings.Builder
	sb.WriteString(chatPreamble)

	if len(r.History) > 0 {
		sb.WriteString(chatHistoryHeader)
		for _, turn := range r.History {
			sb.WriteString(fmt.Sprintf("%s: %s\n", turn.Role, turn.Text))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("User: ")
	sb.WriteString(r.Message)

	return sb.String()
}
