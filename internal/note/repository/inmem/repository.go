// Package inmem is the in-memory note repository.
package inmem

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"productivity-assistant/internal/model"
	"productivity-assistant/internal/note/repository"
)

type Repository struct {
	mu    sync.RWMutex
	notes map[string][]model.Note // keyed by user id, in creation order
}

var _ repository.NoteRepository = (*Repository)(nil)

// New creates an empty in-memory note repository.
func New() *Repository {
	return &Repository{
		notes: make(map[string][]model.Note),
	}
}

func (r *Repository) ListNotes(ctx context.Context, sc model.Scope, opt repository.ListNotesOptions) ([]model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.notes[sc.UserID]
	result := make([]model.Note, 0, len(all))
	for _, n := range all {
		if opt.Archived != nil && n.Archived != *opt.Archived {
			continue
		}
		result = append(result, n)
	}

	return result, nil
}

func (r *Repository) GetNote(ctx context.Context, sc model.Scope, id string) (model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.notes[sc.UserID] {
		if n.ID == id {
			return n, nil
		}
	}

	return model.Note{}, repository.ErrNoteNotFound
}

func (r *Repository) SetAISummary(ctx context.Context, sc model.Scope, id, summary string) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes := r.notes[sc.UserID]
	for i := range notes {
		if notes[i].ID == id {
			notes[i].AISummary = summary
			notes[i].UpdatedAt = time.Now()
			return notes[i], nil
		}
	}

	return model.Note{}, repository.ErrNoteNotFound
}

// Create persists a new note owned by the scope's user.
func (r *Repository) Create(ctx context.Context, sc model.Scope, title, content string) (model.Note, error) {
	now := time.Now()
	n := model.Note{
		ID:        uuid.NewString(),
		UserID:    sc.UserID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	r.notes[sc.UserID] = append(r.notes[sc.UserID], n)
	r.mu.Unlock()

	return n, nil
}

// Seed inserts a note verbatim, for tests and local fixtures.
func (r *Repository) Seed(n model.Note) {
	r.mu.Lock()
	r.notes[n.UserID] = append(r.notes[n.UserID], n)
	r.mu.Unlock()
}
