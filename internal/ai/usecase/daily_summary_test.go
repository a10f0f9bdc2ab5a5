package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"productivity-assistant/internal/model"
)

func TestDailySummary(t *testing.T) {
	f := newTestFixture(&mockGateway{reply: "Great work today!"})
	sc := testScope()

	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)

	// Completed today: counts
	f.tasks.Seed(model.Task{
		ID: "t1", UserID: sc.UserID, Title: "Ship release",
		Status: model.TaskStatusCompleted, CompletedAt: &now, UpdatedAt: now,
	})
	// Completed yesterday: does not count
	f.tasks.Seed(model.Task{
		ID: "t2", UserID: sc.UserID, Title: "Old chore",
		Status: model.TaskStatusCompleted, CompletedAt: &yesterday, UpdatedAt: yesterday,
	})
	// Pending and in progress both count as pending
	f.tasks.Seed(model.Task{
		ID: "t3", UserID: sc.UserID, Title: "Write docs",
		Status: model.TaskStatusPending, UpdatedAt: now,
	})
	f.tasks.Seed(model.Task{
		ID: "t4", UserID: sc.UserID, Title: "Review PR",
		Status: model.TaskStatusInProgress, UpdatedAt: now,
	})

	// One note from today, one from yesterday
	f.notes.Seed(model.Note{ID: "n1", UserID: sc.UserID, Title: "Today", CreatedAt: now})
	f.notes.Seed(model.Note{ID: "n2", UserID: sc.UserID, Title: "Yesterday", CreatedAt: yesterday})

	out, err := f.uc.DailySummary(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Digest.CompletedTasks != 1 {
		t.Errorf("expected 1 completed task, got %d", out.Digest.CompletedTasks)
	}
	if out.Digest.PendingTasks != 2 {
		t.Errorf("expected 2 pending tasks, got %d", out.Digest.PendingTasks)
	}
	if out.Digest.NotesCreated != 1 {
		t.Errorf("expected 1 note created today, got %d", out.Digest.NotesCreated)
	}

	if out.Summary != "Great work today!" {
		t.Errorf("unexpected summary: %q", out.Summary)
	}

	wantStats := "Tasks: 1 completed, 2 pending | Notes: 1 created today"
	if out.Stats != wantStats {
		t.Errorf("expected stats %q, got %q", wantStats, out.Stats)
	}
}

func TestDailySummary_EmptyDay(t *testing.T) {
	f := newTestFixture(&mockGateway{reply: "A fresh start."})

	out, err := f.uc.DailySummary(context.Background(), testScope())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Digest.CompletedTasks != 0 || out.Digest.PendingTasks != 0 || out.Digest.NotesCreated != 0 {
		t.Errorf("expected zero digest, got %+v", out.Digest)
	}

	// The model still gets asked, with zero counts embedded in the prompt
	if f.gateway.callCount != 1 {
		t.Fatalf("expected 1 gateway call, got %d", f.gateway.callCount)
	}
	if !strings.Contains(f.gateway.prompts[0], "- Completed tasks: 0") {
		t.Errorf("prompt should embed zero completed count, got: %q", f.gateway.prompts[0])
	}
}
