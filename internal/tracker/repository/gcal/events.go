package gcal

import (
	"context"
	"fmt"
	"time"

	"calendar-time-tracker/internal/tracker"
	"calendar-time-tracker/pkg/gcalendar"
)

// ListEvents fetches and maps provider events for the fetch window.
func (r *implRepository) ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]tracker.RawEvent, error) {
	events, err := r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    timeMin,
		TimeMax:    timeMax,
	})
	if err != nil {
		r.l.Errorf(ctx, "gcal.ListEvents: %v", err)
		return nil, fmt.Errorf("listing events: %w", err)
	}

	raws := make([]tracker.RawEvent, 0, len(events))
	for _, ev := range events {
		raws = append(raws, tracker.RawEvent{
			Summary:   ev.Summary,
			ColorID:   ev.ColorID,
			EventType: ev.EventType,
			Start:     tracker.EventTime{DateTime: ev.Start.DateTime, Date: ev.Start.Date},
			End:       tracker.EventTime{DateTime: ev.End.DateTime, Date: ev.End.Date},
		})
	}
	return raws, nil
}

// Timezone returns the calendar's configured timezone name.
func (r *implRepository) Timezone(ctx context.Context) (string, error) {
	tz, err := r.client.Timezone(ctx)
	if err != nil {
		r.l.Errorf(ctx, "gcal.Timezone: %v", err)
		return "", fmt.Errorf("getting calendar timezone: %w", err)
	}
	return tz, nil
}

// Colors returns the provider's event color palette.
func (r *implRepository) Colors(ctx context.Context) ([]tracker.Color, error) {
	palette, err := r.client.Colors(ctx)
	if err != nil {
		r.l.Errorf(ctx, "gcal.Colors: %v", err)
		return nil, fmt.Errorf("getting color palette: %w", err)
	}

	colors := make([]tracker.Color, 0, len(palette))
	for _, c := range palette {
		colors = append(colors, tracker.Color{
			ID:         c.ID,
			Background: c.Background,
			Foreground: c.Foreground,
		})
	}
	return colors, nil
}
