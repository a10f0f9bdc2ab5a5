package usecase

import (
	"context"
	"fmt"
	"time"

	"productivity-assistant/internal/ai"
	"productivity-assistant/internal/ai/prompt"
	"productivity-assistant/internal/model"
	noteRepo "productivity-assistant/internal/note/repository"
	taskRepo "productivity-assistant/internal/task/repository"
)

// DailySummary counts today's activity and asks the model for a motivational
// summary. "Today" starts at local midnight.
func (uc *implUseCase) DailySummary(ctx context.Context, sc model.Scope) (ai.DailySummaryOutput, error) {
	digest, err := uc.buildDigest(ctx, sc)
	if err != nil {
		return ai.DailySummaryOutput{}, err
	}

	summary, err := uc.complete(ctx, prompt.Build(prompt.DailySummary{
		Digest: prompt.Digest{
			CompletedTasks: digest.CompletedTasks,
			PendingTasks:   digest.PendingTasks,
			NotesCreated:   digest.NotesCreated,
		},
	}))
	if err != nil {
		return ai.DailySummaryOutput{}, err
	}

	stats := fmt.Sprintf("Tasks: %d completed, %d pending | Notes: %d created today",
		digest.CompletedTasks, digest.PendingTasks, digest.NotesCreated)

	return ai.DailySummaryOutput{
		Summary: summary,
		Stats:   stats,
		Digest:  digest,
	}, nil
}

// buildDigest counts tasks completed today, open tasks, and notes created
// today for the scope's user.
func (uc *implUseCase) buildDigest(ctx context.Context, sc model.Scope) (ai.Digest, error) {
	tasks, err := uc.taskRepo.ListTasks(ctx, sc, taskRepo.ListTasksOptions{})
	if err != nil {
		return ai.Digest{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	notes, err := uc.noteRepo.ListNotes(ctx, sc, noteRepo.ListNotesOptions{})
	if err != nil {
		return ai.Digest{}, fmt.Errorf("failed to list notes: %w", err)
	}

	todayStart := startOfToday(time.Now())

	var digest ai.Digest
	for _, t := range tasks {
		switch t.Status {
		case model.TaskStatusCompleted:
			if completedToday(t, todayStart) {
				digest.CompletedTasks++
			}
		case model.TaskStatusPending, model.TaskStatusInProgress:
			digest.PendingTasks++
		}
	}

	for _, n := range notes {
		if !n.CreatedAt.Before(todayStart) {
			digest.NotesCreated++
		}
	}

	return digest, nil
}

// completedToday reports whether a completed task finished after local
// midnight. Tasks without a completion timestamp fall back to UpdatedAt.
func completedToday(t model.Task, todayStart time.Time) bool {
	when := t.UpdatedAt
	if t.CompletedAt != nil {
		when = *t.CompletedAt
	}
	return !when.Before(todayStart)
}
