package repository

import (
	"context"
	"time"

	"calendar-time-tracker/internal/tracker"
)

// EventSource abstracts the calendar provider the tracker reads from.
type EventSource interface {
	// ListEvents returns every event overlapping [timeMin, timeMax).
	ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]tracker.RawEvent, error)

	// Timezone returns the calendar's configured IANA timezone name.
	Timezone(ctx context.Context) (string, error)

	// Colors returns the provider's event color palette.
	Colors(ctx context.Context) ([]tracker.Color, error)
}
