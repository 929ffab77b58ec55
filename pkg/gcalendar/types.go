package gcalendar

import "time"

// EventTime is one end of an event as delivered by the Calendar API:
// either an RFC3339 timestamp (timed event) or a plain calendar date
// (all-day event). Exactly one of the two is set.
type EventTime struct {
	DateTime string // RFC3339 with offset, empty for all-day events
	Date     string // YYYY-MM-DD, empty for timed events
}

// Event is a raw Google Calendar event, kept close to the wire shape so
// callers can apply their own classification and parsing rules.
type Event struct {
	ID        string
	Summary   string
	ColorID   string
	EventType string // default | outOfOffice | focusTime | ...
	Start     EventTime
	End       EventTime
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string // defaults to "primary"
	TimeMin    time.Time
	TimeMax    time.Time
}

// Color is one entry of the provider's event color palette.
type Color struct {
	ID         string `json:"id"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}
