package usecase

import (
	"context"
	"strings"

	"productivity-assistant/internal/ai"
	"productivity-assistant/internal/ai/parse"
	"productivity-assistant/internal/ai/prompt"
	"productivity-assistant/internal/model"
	"productivity-assistant/internal/task/repository"
)

// GenerateTasks extracts actionable task titles from free text and optionally
// persists them as pending tasks. Blank input short-circuits to an empty list
// without a gateway call.
func (uc *implUseCase) GenerateTasks(ctx context.Context, sc model.Scope, input ai.GenerateTasksInput) (ai.GenerateTasksOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return ai.GenerateTasksOutput{Tasks: []string{}}, nil
	}

	raw, err := uc.complete(ctx, prompt.Build(prompt.GenerateTasks{Text: input.Text}))
	if err != nil {
		return ai.GenerateTasksOutput{}, err
	}

	titles := parse.TaskList(raw)
	uc.l.Infof(ctx, "GenerateTasks: user=%s extracted=%d auto_create=%t", sc.UserID, len(titles), input.AutoCreate)

	out := ai.GenerateTasksOutput{Tasks: titles}
	if !input.AutoCreate {
		return out, nil
	}

	for _, title := range titles {
		created, createErr := uc.taskRepo.CreateTask(ctx, sc, repository.CreateTaskOptions{
			Title:       title,
			Status:      model.TaskStatusPending,
			Priority:    model.TaskPriorityMedium,
			AIGenerated: true,
		})
		if createErr != nil {
			uc.l.Errorf(ctx, "GenerateTasks: failed to create task %q: %v", title, createErr)
			continue
		}

		// Non-blocking on failure
		uc.tryCreateCalendarEvent(ctx, created)

		out.Created = append(out.Created, created)
	}

	return out, nil
}
