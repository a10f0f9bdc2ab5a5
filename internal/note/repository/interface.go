package repository

import (
	"context"

	"productivity-assistant/internal/model"
)

// NoteRepository is the note data collaborator for the AI core.
type NoteRepository interface {
	// ListNotes returns the user's notes in creation order, optionally
	// filtered by archived state (nil means "no filter").
	ListNotes(ctx context.Context, sc model.Scope, opt ListNotesOptions) ([]model.Note, error)

	// GetNote returns the note with the given id if the scope's user owns it;
	// ErrNoteNotFound otherwise.
	GetNote(ctx context.Context, sc model.Scope, id string) (model.Note, error)

	// SetAISummary stores the generated summary on the note.
	SetAISummary(ctx context.Context, sc model.Scope, id, summary string) (model.Note, error)
}

// ListNotesOptions filters ListNotes.
type ListNotesOptions struct {
	Archived *bool
}
