// Package inmem is the in-memory task repository. It stands in for a real
// persistence layer and keeps the repository contract honest in tests and
// local runs.
package inmem

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"productivity-assistant/internal/model"
	"productivity-assistant/internal/task/repository"
)

type Repository struct {
	mu    sync.RWMutex
	tasks map[string][]model.Task // keyed by user id, in creation order
}

var _ repository.TaskRepository = (*Repository)(nil)

// New creates an empty in-memory task repository.
func New() *Repository {
	return &Repository{
		tasks: make(map[string][]model.Task),
	}
}

func (r *Repository) ListTasks(ctx context.Context, sc model.Scope, opt repository.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.tasks[sc.UserID]
	result := make([]model.Task, 0, len(all))
	for _, t := range all {
		if opt.Status != nil && t.Status != *opt.Status {
			continue
		}
		if opt.Priority != nil && t.Priority != *opt.Priority {
			continue
		}
		result = append(result, t)
	}

	return result, nil
}

func (r *Repository) CreateTask(ctx context.Context, sc model.Scope, opt repository.CreateTaskOptions) (model.Task, error) {
	now := time.Now()
	t := model.Task{
		ID:          uuid.NewString(),
		UserID:      sc.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		Status:      opt.Status,
		Priority:    opt.Priority,
		AIGenerated: opt.AIGenerated,
		DueDate:     opt.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if t.Status == "" {
		t.Status = model.TaskStatusPending
	}
	if t.Priority == "" {
		t.Priority = model.TaskPriorityMedium
	}

	r.mu.Lock()
	r.tasks[sc.UserID] = append(r.tasks[sc.UserID], t)
	r.mu.Unlock()

	return t, nil
}

// Seed inserts a task verbatim, for tests and local fixtures.
func (r *Repository) Seed(t model.Task) {
	r.mu.Lock()
	r.tasks[t.UserID] = append(r.tasks[t.UserID], t)
	r.mu.Unlock()
}
