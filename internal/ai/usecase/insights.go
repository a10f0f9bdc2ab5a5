package usecase

import (
	"context"
	"fmt"
	"strings"

	"productivity-assistant/internal/ai"
	"productivity-assistant/internal/ai/prompt"
	"productivity-assistant/internal/model"
	noteRepo "productivity-assistant/internal/note/repository"
	taskRepo "productivity-assistant/internal/task/repository"
)

const (
	maxInsightNotes       = 5
	maxInsightTasks       = 10
	noteSnippetMaxContent = 100
)

// Insights condenses the user's recent notes and tasks into snippets and asks
// the model for productivity recommendations.
func (uc *implUseCase) Insights(ctx context.Context, sc model.Scope) (ai.InsightsOutput, error) {
	notes, err := uc.noteRepo.ListNotes(ctx, sc, noteRepo.ListNotesOptions{})
	if err != nil {
		return ai.InsightsOutput{}, fmt.Errorf("failed to list notes: %w", err)
	}

	tasks, err := uc.taskRepo.ListTasks(ctx, sc, taskRepo.ListTasksOptions{})
	if err != nil {
		return ai.InsightsOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	insights, err := uc.complete(ctx, prompt.Build(prompt.Insights{
		NoteSnippets: noteSnippets(notes),
		TaskSnippets: taskSnippets(tasks),
	}))
	if err != nil {
		return ai.InsightsOutput{}, err
	}

	return ai.InsightsOutput{Insights: insights}, nil
}

// noteSnippets renders up to maxInsightNotes notes as "Title: <content prefix>"
// lines.
func noteSnippets(notes []model.Note) string {
	if len(notes) > maxInsightNotes {
		notes = notes[:maxInsightNotes]
	}

	lines := make([]string, 0, len(notes))
	for _, n := range notes {
		lines = append(lines, n.Title+": "+truncateRunes(n.Content, noteSnippetMaxContent))
	}
	return strings.Join(lines, "\n")
}

// taskSnippets renders up to maxInsightTasks tasks as "Title (STATUS, PRIORITY)"
// lines.
func taskSnippets(tasks []model.Task) string {
	if len(tasks) > maxInsightTasks {
		tasks = tasks[:maxInsightTasks]
	}

	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, fmt.Sprintf("%s (%s, %s)", t.Title, t.Status, t.Priority))
	}
	return strings.Join(lines, "\n")
}
