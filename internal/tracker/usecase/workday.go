package usecase

import (
	"time"

	"calendar-time-tracker/internal/tracker"
)

// dailyWindow computes the working window of one calendar date. A
// non-work day, or a config whose end does not follow its start, yields
// zero capacity rather than an error.
func dailyWindow(date time.Time, cfg tracker.WorkConfig, loc *time.Location) tracker.DailyWindow {
	if !cfg.WorkDays[date.Weekday()] {
		return tracker.DailyWindow{}
	}

	start := cfg.WorkStart.At(date, loc)
	end := cfg.WorkEnd.At(date, loc)

	capacity := end.Sub(start) - cfg.LunchDuration
	if capacity < 0 {
		capacity = 0
	}

	return tracker.DailyWindow{
		IsWorkDay: true,
		WorkStart: start,
		WorkEnd:   end,
		Capacity:  capacity,
	}
}
