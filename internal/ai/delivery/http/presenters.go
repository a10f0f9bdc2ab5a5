package http

import (
	"time"

	"productivity-assistant/internal/ai"
	"productivity-assistant/internal/model"
	"productivity-assistant/internal/session"
)

// --- Request DTOs ---

type summarizeReq struct {
	Text string `json:"text"`
}

func (r summarizeReq) toInput() ai.SummarizeInput {
	return ai.SummarizeInput{Text: r.Text}
}

// ---

type generateTasksReq struct {
	Text       string `json:"text"`
	AutoCreate bool   `json:"auto_create"`
}

func (r generateTasksReq) toInput() ai.GenerateTasksInput {
	return ai.GenerateTasksInput{
		Text:       r.Text,
		AutoCreate: r.AutoCreate,
	}
}

// ---

type chatReq struct {
	Message string        `json:"message"`
	History []chatTurnReq `json:"history"`
}

type chatTurnReq struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

func (r chatReq) toInput() ai.ChatOnceInput {
	history := make([]session.Turn, 0, len(r.History))
	for _, turn := range r.History {
		history = append(history, session.Turn{
			Role: session.Role(turn.Role),
			Text: turn.Text,
		})
	}
	return ai.ChatOnceInput{
		Message: r.Message,
		History: history,
	}
}

// --- Response DTOs ---

type summarizeResp struct {
	Summary string `json:"summary"`
}

type summarizeNoteResp struct {
	NoteID  string `json:"note_id"`
	Summary string `json:"summary"`
}

type taskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	AIGenerated bool       `json:"ai_generated"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type generateTasksResp struct {
	Tasks   []string   `json:"tasks"`
	Created []taskResp `json:"created,omitempty"`
}

type dailySummaryResp struct {
	Summary        string `json:"summary"`
	Stats          string `json:"stats"`
	CompletedTasks int    `json:"completed_tasks"`
	PendingTasks   int    `json:"pending_tasks"`
	NotesCreated   int    `json:"notes_created"`
}

type chatResp struct {
	Reply string `json:"reply"`
}

type insightsResp struct {
	Insights string `json:"insights"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		AIGenerated: t.AIGenerated,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
	}
}

func (h *handler) newGenerateTasksResp(o ai.GenerateTasksOutput) generateTasksResp {
	resp := generateTasksResp{Tasks: o.Tasks}
	for _, t := range o.Created {
		resp.Created = append(resp.Created, newTaskResp(t))
	}
	return resp
}

func (h *handler) newDailySummaryResp(o ai.DailySummaryOutput) dailySummaryResp {
	return dailySummaryResp{
		Summary:        o.Summary,
		Stats:          o.Stats,
		CompletedTasks: o.Digest.CompletedTasks,
		PendingTasks:   o.Digest.PendingTasks,
		NotesCreated:   o.Digest.NotesCreated,
	}
}
