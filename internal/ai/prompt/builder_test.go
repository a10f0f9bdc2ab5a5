package prompt_test

import (
	"strings"
	"testing"

	"productivity-assistant/internal/ai/prompt"
	"productivity-assistant/internal/session"
)

func TestBuildSummarize(t *testing.T) {
	got := prompt.Build(prompt.Summarize{Text: "meeting notes here"})

	if !strings.Contains(got, "concise summary") {
		t.Errorf("missing summary instruction: %q", got)
	}
	if !strings.Contains(got, "Text to summarize:\nmeeting notes here") {
		t.Errorf("text not embedded: %q", got)
	}
}

func TestBuildGenerateTasks(t *testing.T) {
	got := prompt.Build(prompt.GenerateTasks{Text: "plan the launch"})

	if !strings.Contains(got, "numbered list") {
		t.Errorf("missing numbered-list instruction: %q", got)
	}
	if !strings.Contains(got, "Text:\nplan the launch") {
		t.Errorf("text not embedded: %q", got)
	}
}

func TestBuildDailySummarySectionsInOrder(t *testing.T) {
	got := prompt.Build(prompt.DailySummary{
		Digest: prompt.Digest{CompletedTasks: 3, PendingTasks: 2, NotesCreated: 1},
	})

	for _, want := range []string{
		"Completed tasks: 3",
		"Pending tasks: 2",
		"Notes created: 1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing counter %q in %q", want, got)
		}
	}

	accomplishments := strings.Index(got, "summary of accomplishments")
	encouragement := strings.Index(got, "Encouragement for pending tasks")
	tip := strings.Index(got, "One productivity tip")

	if accomplishments == -1 || encouragement == -1 || tip == -1 {
		t.Fatalf("missing section instruction in %q", got)
	}
	if !(accomplishments < encouragement && encouragement < tip) {
		t.Errorf("sections out of order: %d %d %d", accomplishments, encouragement, tip)
	}
}

func TestBuildChatWithHistory(t *testing.T) {
	got := prompt.Build(prompt.Chat{
		Message: "what should I do next?",
		History: []session.Turn{
			{Role: session.RoleUser, Text: "hello"},
			{Role: session.RoleAssistant, Text: "hi, how can I help?"},
		},
	})

	if !strings.HasPrefix(got, "You are a helpful productivity assistant.") {
		t.Errorf("missing preamble: %q", got)
	}
	if !strings.Contains(got, "Previous conversation:\nUser: hello\nAssistant: hi, how can I help?\n") {
		t.Errorf("history not rendered verbatim in order: %q", got)
	}
	if !strings.HasSuffix(got, "User: what should I do next?") {
		t.Errorf("new message not appended last: %q", got)
	}
}

func TestBuildChatWithoutHistory(t *testing.T) {
	got := prompt.Build(prompt.Chat{Message: "hello"})

	if strings.Contains(got, "Previous conversation") {
		t.Errorf("history header rendered for empty history: %q", got)
	}
	if !strings.HasSuffix(got, "User: hello") {
		t.Errorf("message not appended: %q", got)
	}
}

func TestBuildInsightsPlaceholders(t *testing.T) {
	got := prompt.Build(prompt.Insights{})

	if !strings.Contains(got, "No notes") {
		t.Errorf("missing notes placeholder: %q", got)
	}
	if !strings.Contains(got, "No tasks") {
		t.Errorf("missing tasks placeholder: %q", got)
	}
}

func TestBuildInsightsSections(t *testing.T) {
	got := prompt.Build(prompt.Insights{
		NoteSnippets: "Standup: discussed roadmap",
		TaskSnippets: "Ship release (PENDING, HIGH)",
	})

	for _, want := range []string{
		"Standup: discussed roadmap",
		"Ship release (PENDING, HIGH)",
		"patterns or themes",
		"Priority recommendations",
		"Time management suggestions",
		"Potential blockers",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	req := prompt.DailySummary{Digest: prompt.Digest{CompletedTasks: 1, PendingTasks: 2, NotesCreated: 3}}
	if prompt.Build(req) != prompt.Build(req) {
		t.Error("identical requests rendered differently")
	}
}
