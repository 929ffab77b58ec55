package usecase

import (
	"fmt"
	"time"

	"calendar-time-tracker/internal/tracker"
)

// parseEventTime parses one end of a raw event. A dateTime value keeps
// its own offset; a plain date is interpreted as midnight UTC and marks
// the event all-day.
func parseEventTime(et tracker.EventTime) (time.Time, bool, error) {
	switch {
	case et.DateTime != "":
		t, err := time.Parse(time.RFC3339, et.DateTime)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("invalid dateTime %q: %w", et.DateTime, err)
		}
		return t, false, nil
	case et.Date != "":
		t, err := time.Parse("2006-01-02", et.Date)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("invalid date %q: %w", et.Date, err)
		}
		return t.UTC(), true, nil
	default:
		return time.Time{}, false, fmt.Errorf("event time has neither dateTime nor date")
	}
}

// normalize parses a raw event into the supplied timezone. The second
// return value is false when the event is unparseable and must be
// skipped; normalization failures never abort a run.
func normalize(raw tracker.RawEvent, loc *time.Location) (tracker.NormalizedEvent, bool) {
	start, allDay, err := parseEventTime(raw.Start)
	if err != nil {
		return tracker.NormalizedEvent{}, false
	}
	end, _, err := parseEventTime(raw.End)
	if err != nil {
		return tracker.NormalizedEvent{}, false
	}

	start = start.In(loc)
	end = end.In(loc)

	// The provider marks all-day ranges with an exclusive end date; pull
	// the end back one second so the event stays inside its last day.
	if allDay && isMidnight(end) && civilDate(end).After(civilDate(start)) {
		end = end.Add(-time.Second)
	}

	return tracker.NormalizedEvent{
		Summary: raw.Summary,
		Start:   start,
		End:     end,
		AllDay:  allDay,
	}, true
}

func isMidnight(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// civilDate strips a timestamp down to its calendar date, normalized to
// midnight UTC so dates from different zones compare correctly.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
