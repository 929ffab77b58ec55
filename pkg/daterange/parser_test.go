package daterange_test

import (
	"testing"
	"time"

	"calendar-time-tracker/pkg/daterange"
)

func TestParse(t *testing.T) {
	parser := daterange.NewParserAt(time.UTC)
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name      string
		preset    string
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			name:      "Today",
			preset:    "today",
			wantStart: day(2024, 5, 1),
			wantEnd:   day(2024, 5, 1),
		},
		{
			name:      "Yesterday",
			preset:    "yesterday",
			wantStart: day(2024, 4, 30),
			wantEnd:   day(2024, 4, 30),
		},
		{
			name:      "This week (Mon-Sun around a Wednesday)",
			preset:    "this_week",
			wantStart: day(2024, 4, 29),
			wantEnd:   day(2024, 5, 5),
		},
		{
			name:      "Last week",
			preset:    "last_week",
			wantStart: day(2024, 4, 22),
			wantEnd:   day(2024, 4, 28),
		},
		{
			name:      "This month",
			preset:    "this_month",
			wantStart: day(2024, 5, 1),
			wantEnd:   day(2024, 5, 31),
		},
		{
			name:      "Last month",
			preset:    "last_month",
			wantStart: day(2024, 4, 1),
			wantEnd:   day(2024, 4, 30),
		},
		{
			name:      "Last 30 days",
			preset:    "last_30_days",
			wantStart: day(2024, 4, 2),
			wantEnd:   day(2024, 5, 1),
		},
		{
			name:    "Unknown preset",
			preset:  "fortnight",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.preset, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("Parse() start = %v, want %v", got.Start, tt.wantStart)
			}
			if !got.End.Equal(tt.wantEnd) {
				t.Errorf("Parse() end = %v, want %v", got.End, tt.wantEnd)
			}
		})
	}
}

func TestParseWeekFromSunday(t *testing.T) {
	parser := daterange.NewParserAt(time.UTC)
	sunday := time.Date(2024, 5, 5, 10, 0, 0, 0, time.UTC)

	got, err := parser.Parse("this_week", sunday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantStart := time.Date(2024, 4, 29, 0, 0, 0, 0, time.UTC)
	if !got.Start.Equal(wantStart) {
		t.Errorf("Sunday should still belong to the Monday-based week: got %v, want %v", got.Start, wantStart)
	}
}
