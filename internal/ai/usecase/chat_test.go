package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"productivity-assistant/internal/ai"
	"productivity-assistant/internal/session"
)

func TestChat(t *testing.T) {
	f := newTestFixture(&mockGateway{reply: "Sure, here's a plan."})
	sc := testScope()

	out, err := f.uc.Chat(context.Background(), sc, ai.ChatInput{Message: "Help me plan my day"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Reply != "Sure, here's a plan." {
		t.Errorf("unexpected reply: %q", out.Reply)
	}

	turns := f.sessions.History(sc.UserID)
	if len(turns) != 2 {
		t.Fatalf("expected 2 stored turns, got %d", len(turns))
	}
	if turns[0].Role != session.RoleUser || turns[0].Text != "Help me plan my day" {
		t.Errorf("unexpected user turn: %+v", turns[0])
	}
	if turns[1].Role != session.RoleAssistant || turns[1].Text != "Sure, here's a plan." {
		t.Errorf("unexpected assistant turn: %+v", turns[1])
	}
}

func TestChat_HistoryFlowsIntoPrompt(t *testing.T) {
	f := newTestFixture(&mockGateway{reply: "reply"})
	sc := testScope()

	f.sessions.Append(sc.UserID, session.RoleUser, "What should I do first?")
	f.sessions.Append(sc.UserID, session.RoleAssistant, "Start with the report.")

	_, err := f.uc.Chat(context.Background(), sc, ai.ChatInput{Message: "And after that?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := f.gateway.prompts[0]
	if !strings.Contains(p, "Previous conversation:") {
		t.Errorf("prompt should carry the history header, got: %q", p)
	}
	if !strings.Contains(p, "User: What should I do first?") {
		t.Errorf("prompt should carry the prior user turn, got: %q", p)
	}
	if !strings.Contains(p, "Assistant: Start with the report.") {
		t.Errorf("prompt should carry the prior assistant turn, got: %q", p)
	}
	// The new message appears as the final user line, not as history
	if !strings.HasSuffix(p, "User: And after that?") {
		t.Errorf("prompt should end with the new message, got: %q", p)
	}
}

func TestChat_BlankMessage(t *testing.T) {
	f := newTestFixture(&mockGateway{reply: "should not be called"})
	sc := testScope()

	out, err := f.uc.Chat(context.Background(), sc, ai.ChatInput{Message: "   "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Reply != "Please provide a message." {
		t.Errorf("unexpected reply: %q", out.Reply)
	}

	if f.gateway.callCount != 0 {
		t.Errorf("expected no gateway calls, got %d", f.gateway.callCount)
	}

	if got := f.sessions.Len(sc.UserID); got != 0 {
		t.Errorf("blank message should not be recorded, got %d turns", got)
	}
}

func TestChat_GatewayFailureKeepsUserTurn(t *testing.T) {
	f := newTestFixture(&mockGateway{err: errGatewayDown})
	sc := testScope()

	_, err := f.uc.Chat(context.Background(), sc, ai.ChatInput{Message: "Hello"})
	if !errors.Is(err, ai.ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got: %v", err)
	}

	turns := f.sessions.History(sc.UserID)
	if len(turns) != 1 {
		t.Fatalf("expected only the user turn to be recorded, got %d", len(turns))
	}
	if turns[0].Role != session.RoleUser {
		t.Errorf("expected a user turn, got %+v", turns[0])
	}
}

func TestChatOnce_DoesNotTouchStore(t *testing.T) {
	f := newTestFixture(&mockGateway{reply: "standalone reply"})
	sc := testScope()

	out, err := f.uc.ChatOnce(context.Background(), sc, ai.ChatOnceInput{
		Message: "One-off question",
		History: []session.Turn{
			{Role: session.RoleUser, Text: "earlier question"},
			{Role: session.RoleAssistant, Text: "earlier answer"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Reply != "standalone reply" {
		t.Errorf("unexpected reply: %q", out.Reply)
	}

	if got := f.sessions.Len(sc.UserID); got != 0 {
		t.Errorf("stateless chat should not record turns, got %d", got)
	}

	if !strings.Contains(f.gateway.prompts[0], "User: earlier question") {
		t.Errorf("caller-supplied history should flow into the prompt, got: %q", f.gateway.prompts[0])
	}
}

func TestClearChat(t *testing.T) {
	f := newTestFixture(&mockGateway{reply: "ok"})
	sc := testScope()

	f.sessions.Append(sc.UserID, session.RoleUser, "Hello")

	if err := f.uc.ClearChat(context.Background(), sc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := f.sessions.Len(sc.UserID); got != 0 {
		t.Errorf("expected empty history after clear, got %d turns", got)
	}

	// Clearing again is a no-op
	if err := f.uc.ClearChat(context.Background(), sc); err != nil {
		t.Fatalf("unexpected error on second clear: %v", err)
	}
}
