package daterange

import (
	"fmt"
	"strings"
	"time"
)

// Parser resolves named range presets into absolute calendar dates.
type Parser struct {
	location *time.Location
}

// NewParserAt creates a range parser for an already-resolved location.
// Timezone resolution (and caching) is the caller's concern.
func NewParserAt(loc *time.Location) *Parser {
	return &Parser{location: loc}
}

// Parse resolves a preset name to an inclusive [start, end] date pair.
// The baseTime is used as the reference point (usually time.Now()).
// Weeks start on Monday.
func (p *Parser) Parse(preset string, baseTime time.Time) (Range, error) {
	today := p.startOfDay(baseTime)

	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "today":
		return Range{Start: today, End: today}, nil
	case "yesterday":
		d := today.AddDate(0, 0, -1)
		return Range{Start: d, End: d}, nil
	case "this_week":
		start := p.mondayOnOrBefore(today)
		return Range{Start: start, End: start.AddDate(0, 0, 6)}, nil
	case "last_week":
		start := p.mondayOnOrBefore(today).AddDate(0, 0, -7)
		return Range{Start: start, End: start.AddDate(0, 0, 6)}, nil
	case "this_month":
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, p.location)
		return Range{Start: start, End: start.AddDate(0, 1, -1)}, nil
	case "last_month":
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, p.location).AddDate(0, -1, 0)
		return Range{Start: start, End: start.AddDate(0, 1, -1)}, nil
	case "last_30_days":
		return Range{Start: today.AddDate(0, 0, -29), End: today}, nil
	}

	return Range{}, fmt.Errorf("unknown range preset: %q", preset)
}

// mondayOnOrBefore returns the Monday of the ISO week containing d.
func (p *Parser) mondayOnOrBefore(d time.Time) time.Time {
	weekday := int(d.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return d.AddDate(0, 0, -(weekday - 1))
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
