package usecase

import (
	"productivity-assistant/internal/ai"
	noteRepo "productivity-assistant/internal/note/repository"
	"productivity-assistant/internal/session"
	taskRepo "productivity-assistant/internal/task/repository"
	"productivity-assistant/pkg/gcalendar"
	pkgLog "productivity-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	gateway  ai.Gateway
	sessions *session.Store
	taskRepo taskRepo.TaskRepository
	noteRepo noteRepo.NoteRepository

	// calendar is optional; nil disables event scheduling
	calendar   *gcalendar.Client
	calendarID string
	timezone   string
}

// New creates a new AI UseCase instance.
func New(
	l pkgLog.Logger,
	gateway ai.Gateway,
	sessions *session.Store,
	tasks taskRepo.TaskRepository,
	notes noteRepo.NoteRepository,
	calendar *gcalendar.Client,
	calendarID string,
	timezone string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		gateway:    gateway,
		sessions:   sessions,
		taskRepo:   tasks,
		noteRepo:   notes,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
