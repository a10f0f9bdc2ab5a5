package usecase

import (
	"context"
	"errors"

	"productivity-assistant/internal/model"
	noteInmem "productivity-assistant/internal/note/repository/inmem"
	"productivity-assistant/internal/session"
	taskInmem "productivity-assistant/internal/task/repository/inmem"
)

// mockGateway records every prompt it receives and returns a canned reply or
// error.
type mockGateway struct {
	reply     string
	err       error
	callCount int
	prompts   []string
}

func (g *mockGateway) Complete(ctx context.Context, prompt string) (string, error) {
	g.callCount++
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

var errGatewayDown = errors.New("gateway down")

// mockLogger is a no-op logger for tests
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// testFixture bundles a usecase with its collaborators for assertions.
type testFixture struct {
	uc       *implUseCase
	gateway  *mockGateway
	sessions *session.Store
	tasks    *taskInmem.Repository
	notes    *noteInmem.Repository
}

func newTestFixture(gateway *mockGateway) *testFixture {
	sessions := session.NewStore()
	tasks := taskInmem.New()
	notes := noteInmem.New()

	return &testFixture{
		uc:       New(mockLogger{}, gateway, sessions, tasks, notes, nil, "", ""),
		gateway:  gateway,
		sessions: sessions,
		tasks:    tasks,
		notes:    notes,
	}
}

func testScope() model.Scope {
	return model.Scope{UserID: "user-1", Username: "tester"}
}
