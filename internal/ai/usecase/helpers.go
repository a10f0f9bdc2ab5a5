package usecase

import (
	"context"
	"fmt"
	"time"

	"productivity-assistant/internal/ai"
	"productivity-assistant/internal/model"
	"productivity-assistant/pkg/gcalendar"
)

// complete sends the prompt through the gateway, mapping any failure to
// ErrModelUnavailable so callers see one error regardless of which provider
// layer failed.
func (uc *implUseCase) complete(ctx context.Context, promptText string) (string, error) {
	text, err := uc.gateway.Complete(ctx, promptText)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ai.ErrModelUnavailable, err)
	}
	return text, nil
}

// tryCreateCalendarEvent schedules a one-hour review slot for a freshly
// created task. Returns the event HTML link, or empty string on failure
// (graceful degradation).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	if uc.calendar == nil {
		return ""
	}

	startTime := nextFullHour(time.Now())
	if t.DueDate != nil {
		startTime = *t.DueDate
	}
	endTime := startTime.Add(time.Hour)

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   startTime,
		EndTime:     endTime,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return ""
	}

	return event.HtmlLink
}

func nextFullHour(now time.Time) time.Time {
	return now.Truncate(time.Hour).Add(time.Hour)
}

// startOfToday returns local midnight for the given instant.
func startOfToday(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
