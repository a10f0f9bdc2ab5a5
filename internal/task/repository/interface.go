package repository

import (
	"context"
	"time"

	"productivity-assistant/internal/model"
)

// TaskRepository is the task data collaborator. The AI core reads task lists
// through it and creates AI-generated tasks; everything else about task
// persistence lives behind this interface.
type TaskRepository interface {
	// ListTasks returns the user's tasks, optionally filtered by status and
	// priority, in creation order.
	ListTasks(ctx context.Context, sc model.Scope, opt ListTasksOptions) ([]model.Task, error)

	// CreateTask persists a new task owned by the scope's user.
	CreateTask(ctx context.Context, sc model.Scope, opt CreateTaskOptions) (model.Task, error)
}

// ListTasksOptions filters ListTasks. Nil fields mean "no filter".
type ListTasksOptions struct {
	Status   *model.TaskStatus
	Priority *model.TaskPriority
}

// CreateTaskOptions is the input for CreateTask.
type CreateTaskOptions struct {
	Title       string
	Description string
	Status      model.TaskStatus
	Priority    model.TaskPriority
	AIGenerated bool
	DueDate     *time.Time
}
