package usecase

import (
	"context"
	"fmt"
	"time"

	"calendar-time-tracker/internal/tracker"
	"calendar-time-tracker/pkg/daterange"
)

// noiseFloor absorbs sub-second residue from timezone conversions and
// rounding; contributions at or under it are discarded.
const noiseFloor = time.Second

// Summarize fetches events for the requested range and folds them into
// a per-week, per-category breakdown.
func (uc *implUseCase) Summarize(ctx context.Context, input tracker.SummarizeInput) (tracker.SummarizeOutput, error) {
	tzName := input.Timezone
	if tzName == "" {
		calendarTZ, err := uc.repo.Timezone(ctx)
		if err != nil {
			uc.l.Warnf(ctx, "uc.Summarize: calendar timezone lookup failed, falling back to UTC: %v", err)
			calendarTZ = "UTC"
		}
		tzName = calendarTZ
	}

	loc, err := uc.resolveLocation(tzName)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summarize: resolve timezone %q: %v", tzName, err)
		return tracker.SummarizeOutput{}, fmt.Errorf("%w: %q", tracker.ErrInvalidTimezone, tzName)
	}

	startDate, endDate := civilDate(input.StartDate), civilDate(input.EndDate)
	if input.RangePreset != "" {
		r, presetErr := daterange.NewParserAt(loc).Parse(input.RangePreset, uc.now())
		if presetErr != nil {
			return tracker.SummarizeOutput{}, fmt.Errorf("%w: %q", tracker.ErrInvalidPreset, input.RangePreset)
		}
		startDate, endDate = civilDate(r.Start), civilDate(r.End)
	}
	if endDate.Before(startDate) {
		return tracker.SummarizeOutput{}, tracker.ErrInvalidDateRange
	}

	// Fetch window: midnight of the first day through midnight after the
	// last day, in the resolved timezone.
	timeMin := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, loc)
	timeMax := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 1)

	raws, err := uc.repo.ListEvents(ctx, input.CalendarID, timeMin, timeMax)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summarize ListEvents: %v", err)
		return tracker.SummarizeOutput{}, tracker.ErrEventFetch
	}

	events := uc.prepareEvents(ctx, raws, loc, input.Config)
	summary := aggregate(events, startDate, endDate, loc, input.Config)

	uc.l.Infof(ctx, "uc.Summarize: %d events, %d weeks for %s..%s (%s)",
		len(raws), len(summary), tracker.DateKey(startDate), tracker.DateKey(endDate), tzName)

	return tracker.SummarizeOutput{
		Summary:   summary,
		StartDate: startDate,
		EndDate:   endDate,
		Timezone:  tzName,
		Events:    len(raws),
	}, nil
}

// prepareEvents normalizes and classifies every raw event once.
// Unparseable events are skipped with a diagnostic, never an error.
func (uc *implUseCase) prepareEvents(ctx context.Context, raws []tracker.RawEvent, loc *time.Location, cfg tracker.WorkConfig) []tracker.NormalizedEvent {
	events := make([]tracker.NormalizedEvent, 0, len(raws))
	for _, raw := range raws {
		ev, ok := normalize(raw, loc)
		if !ok {
			uc.l.Warnf(ctx, "uc.Summarize: skipping unparseable event %q (start=%+v end=%+v)", raw.Summary, raw.Start, raw.End)
			continue
		}
		ev.Category = classify(raw, cfg)
		events = append(events, ev)
	}
	return events
}

// aggregate walks the date range week by week, Monday-aligned, and
// returns the week -> category -> duration map. Pure function of its
// inputs.
func aggregate(events []tracker.NormalizedEvent, startDate, endDate time.Time, loc *time.Location, cfg tracker.WorkConfig) tracker.WeeklySummary {
	summary := tracker.WeeklySummary{}

	for cur := startDate; !cur.After(endDate); {
		weekStart := mondayOnOrBefore(cur)
		weekEnd := weekStart.AddDate(0, 0, 6)

		totals := stepWeek(events, maxTime(weekStart, startDate), minTime(weekEnd, endDate), loc, cfg)
		if len(totals) > 0 {
			summary[tracker.DateKey(weekStart)] = totals
		}

		cur = weekEnd.AddDate(0, 0, 1)
	}

	return summary
}

// stepWeek accumulates one week's intersected day range into a fresh
// category map: booked time per category per day, then the residual
// between capacity and booked attributed to the default category.
func stepWeek(events []tracker.NormalizedEvent, actualStart, actualEnd time.Time, loc *time.Location, cfg tracker.WorkConfig) tracker.CategoryTotals {
	totals := tracker.CategoryTotals{}
	var capacity, booked time.Duration

	for day := actualStart; !day.After(actualEnd); day = day.AddDate(0, 0, 1) {
		window := dailyWindow(day, cfg, loc)
		capacity += window.Capacity

		for _, ev := range events {
			if civilDate(ev.Start).After(day) || civilDate(ev.End).Before(day) {
				continue
			}

			if ev.AllDay {
				// Only out-of-office all-day events book time; they consume
				// the full window, lunch included. All other all-day events
				// contribute nothing even when classified to a real
				// category — preserved from the observed behavior.
				if ev.Category == cfg.OOOCategory && window.Valid() {
					span := window.WorkEnd.Sub(window.WorkStart)
					if span > 0 {
						totals[ev.Category] += span
						booked += span
					}
				}
				continue
			}

			if !window.Valid() {
				continue // timed events on non-work days are excluded
			}

			overlapStart := maxTime(ev.Start, window.WorkStart)
			overlapEnd := minTime(ev.End, window.WorkEnd)
			if duration := overlapEnd.Sub(overlapStart); duration > noiseFloor {
				totals[ev.Category] += duration
				booked += duration
			}
		}
	}

	freeTime := capacity - booked
	if freeTime > noiseFloor && cfg.DefaultCategory != "" {
		totals[cfg.DefaultCategory] += freeTime
	}

	return totals
}

// mondayOnOrBefore returns the Monday of the ISO week containing d.
func mondayOnOrBefore(d time.Time) time.Time {
	weekday := int(d.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return d.AddDate(0, 0, -(weekday - 1))
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
