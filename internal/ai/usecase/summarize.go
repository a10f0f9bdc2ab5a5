package usecase

import (
	"context"
	"strings"

	"productivity-assistant/internal/ai"
	"productivity-assistant/internal/ai/prompt"
	"productivity-assistant/internal/model"
)

// Summarize returns a concise summary of the given text.
// Blank input short-circuits to an empty summary without a gateway call.
func (uc *implUseCase) Summarize(ctx context.Context, sc model.Scope, input ai.SummarizeInput) (ai.SummarizeOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return ai.SummarizeOutput{Summary: ""}, nil
	}

	summary, err := uc.complete(ctx, prompt.Build(prompt.Summarize{Text: input.Text}))
	if err != nil {
		return ai.SummarizeOutput{}, err
	}

	return ai.SummarizeOutput{Summary: summary}, nil
}

// SummarizeNote summarizes one of the user's notes and stores the result on it.
func (uc *implUseCase) SummarizeNote(ctx context.Context, sc model.Scope, noteID string) (ai.SummarizeNoteOutput, error) {
	note, err := uc.noteRepo.GetNote(ctx, sc, noteID)
	if err != nil {
		return ai.SummarizeNoteOutput{}, err
	}

	out, err := uc.Summarize(ctx, sc, ai.SummarizeInput{Text: note.Content})
	if err != nil {
		return ai.SummarizeNoteOutput{}, err
	}

	updated, err := uc.noteRepo.SetAISummary(ctx, sc, noteID, out.Summary)
	if err != nil {
		return ai.SummarizeNoteOutput{}, err
	}

	uc.l.Infof(ctx, "SummarizeNote: user=%s note=%s summary_length=%d", sc.UserID, noteID, len(out.Summary))

	return ai.SummarizeNoteOutput{Note: updated, Summary: out.Summary}, nil
}
