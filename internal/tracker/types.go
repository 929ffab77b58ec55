package tracker

import (
	"fmt"
	"time"
)

// --- Raw provider input ---

// EventTime is one end of a raw event: either an RFC3339 timestamp
// (timed event) or a plain calendar date (all-day event).
type EventTime struct {
	DateTime string
	Date     string
}

// RawEvent is a calendar event as delivered by the provider, before
// normalization. Summary may be empty; EventType values other than
// outOfOffice/focusTime are treated as default.
type RawEvent struct {
	Summary   string
	ColorID   string
	EventType string
	Start     EventTime
	End       EventTime
}

// Event type values recognized by the classifier.
const (
	EventTypeDefault     = "default"
	EventTypeOutOfOffice = "outOfOffice"
	EventTypeFocusTime   = "focusTime"
)

// --- Normalized form ---

// NormalizedEvent is a parsed, classified event. Immutable once built.
// Start <= End always holds; for multi-day all-day events End is pulled
// back one second so the event does not leak into the following day.
type NormalizedEvent struct {
	Summary  string
	Start    time.Time
	End      time.Time
	AllDay   bool
	Category string
}

// --- Working-hours model ---

// TimeOfDay is a wall-clock time within a day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// At combines the time of day with a calendar date in a timezone.
func (t TimeOfDay) At(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, loc)
}

// WorkConfig is the fully-populated working-hours and category model for
// one aggregation run. The core assumes the caller filled every field;
// it performs no validation and propagates whatever labels it is given.
type WorkConfig struct {
	WorkStart     TimeOfDay
	WorkEnd       TimeOfDay
	LunchDuration time.Duration
	WorkDays      map[time.Weekday]bool

	DefaultCategory   string
	OOOCategory       string
	FocusTimeCategory string
	UnlabeledCategory string

	UseColorTags   bool
	ColorTags      map[string]string // provider color ID -> category label
	GroupUnlabeled bool
}

// WorkDaysFromISO converts 0=Monday..6=Sunday indices to a weekday set.
// Out-of-range values are ignored.
func WorkDaysFromISO(days []int) map[time.Weekday]bool {
	set := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			continue
		}
		set[time.Weekday((d+1)%7)] = true
	}
	return set
}

// --- Derived structures ---

// DailyWindow is the working window of a single date under a WorkConfig.
// WorkStart/WorkEnd are zero values when the date is not a work day.
// Capacity is the work span net of lunch, floored at zero.
type DailyWindow struct {
	IsWorkDay bool
	WorkStart time.Time
	WorkEnd   time.Time
	Capacity  time.Duration
}

// Valid reports whether the window can absorb timed events.
func (w DailyWindow) Valid() bool {
	return w.IsWorkDay && !w.WorkStart.IsZero() && !w.WorkEnd.IsZero()
}

// CategoryTotals maps category label to accumulated duration.
type CategoryTotals map[string]time.Duration

// WeeklySummary maps week-start date ("2006-01-02", the Monday on or
// before the first day touched) to per-category totals.
type WeeklySummary map[string]CategoryTotals

// DateKey formats a date the way WeeklySummary keys it.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// --- UseCase inputs/outputs ---

// SummarizeInput describes one aggregation request. Either RangePreset
// or StartDate/EndDate must be set; explicit dates are inclusive
// midnights and EndDate >= StartDate is the caller's precondition.
type SummarizeInput struct {
	StartDate   time.Time
	EndDate     time.Time
	RangePreset string
	Timezone    string // optional override; empty means use the calendar's setting
	CalendarID  string
	Config      WorkConfig
}

// SummarizeOutput carries the computed summary and the resolved
// parameters the delivery layer needs for presentation.
type SummarizeOutput struct {
	Summary   WeeklySummary
	StartDate time.Time
	EndDate   time.Time
	Timezone  string
	Events    int // events fetched from the provider, pre-normalization
}

// Color is one entry of the provider's event color palette.
type Color struct {
	ID         string
	Background string
	Foreground string
}

// ListColorsOutput is the provider palette for building color tag config.
type ListColorsOutput struct {
	Colors []Color
}
