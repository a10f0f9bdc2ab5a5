package repository

import "errors"

var (
	ErrNoteNotFound = errors.New("note not found")
)
