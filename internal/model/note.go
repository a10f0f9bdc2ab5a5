package model

import "time"

// Note represents a free-form note owned by a user.
type Note struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	AISummary string
	Archived  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
