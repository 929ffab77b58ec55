package http

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"calendar-time-tracker/config"
	"calendar-time-tracker/internal/tracker"
	"calendar-time-tracker/pkg/response"
)

const defaultCalendarID = "primary"

// --- Request DTOs ---

// summarizeReq selects the date range either with an explicit
// start_date/end_date pair or with a named range preset. Config keys
// the caller omits are filled from the server defaults.
type summarizeReq struct {
	StartDate  string         `json:"start_date"`
	EndDate    string         `json:"end_date"`
	Range      string         `json:"range"`
	TimeZone   string         `json:"time_zone"`
	CalendarID string         `json:"calendar_id"`
	Config     *workConfigReq `json:"config"`
}

// workConfigReq carries per-request working-hours overrides. Pointer
// fields distinguish "omitted" from zero values.
type workConfigReq struct {
	WorkStartTime        *string           `json:"work_start_time"`
	WorkEndTime          *string           `json:"work_end_time"`
	LunchDurationMinutes *int              `json:"lunch_duration_minutes"`
	WorkDays             []int             `json:"work_days"`
	DefaultService       *string           `json:"default_service"`
	OOOService           *string           `json:"ooo_service"`
	FocusTimeService     *string           `json:"focus_time_service"`
	UnlabeledService     *string           `json:"unlabeled_service"`
	GroupUnlabeled       *bool             `json:"group_unlabeled"`
	UseColorTags         *bool             `json:"use_color_tags"`
	ColorTags            map[string]string `json:"color_tags"`
}

func (r summarizeReq) validate() error {
	if r.Range == "" && (r.StartDate == "" || r.EndDate == "") {
		return errors.New("either range or both start_date and end_date are required")
	}
	return nil
}

func (r summarizeReq) toInput(defaults config.TrackerConfig) (tracker.SummarizeInput, error) {
	in := tracker.SummarizeInput{
		RangePreset: r.Range,
		Timezone:    r.TimeZone,
		CalendarID:  r.CalendarID,
	}
	if in.CalendarID == "" {
		in.CalendarID = defaultCalendarID
	}

	if r.Range == "" {
		start, err := time.Parse(response.DateFormat, r.StartDate)
		if err != nil {
			return in, fmt.Errorf("invalid start_date %q: %w", r.StartDate, err)
		}
		end, err := time.Parse(response.DateFormat, r.EndDate)
		if err != nil {
			return in, fmt.Errorf("invalid end_date %q: %w", r.EndDate, err)
		}
		if end.Before(start) {
			return in, fmt.Errorf("end_date %s is before start_date %s", r.EndDate, r.StartDate)
		}
		in.StartDate = start
		in.EndDate = end
	}

	cfg, err := r.mergedConfig(defaults)
	if err != nil {
		return in, err
	}
	in.Config = cfg
	return in, nil
}

// mergedConfig overlays the request config on the server defaults and
// builds the fully-populated model the core expects.
func (r summarizeReq) mergedConfig(defaults config.TrackerConfig) (tracker.WorkConfig, error) {
	req := r.Config
	if req == nil {
		req = &workConfigReq{}
	}

	startStr := strOr(req.WorkStartTime, defaults.WorkStartTime)
	workStart, err := tracker.ParseTimeOfDay(startStr)
	if err != nil {
		return tracker.WorkConfig{}, fmt.Errorf("work_start_time: %w", err)
	}
	endStr := strOr(req.WorkEndTime, defaults.WorkEndTime)
	workEnd, err := tracker.ParseTimeOfDay(endStr)
	if err != nil {
		return tracker.WorkConfig{}, fmt.Errorf("work_end_time: %w", err)
	}

	workDays := req.WorkDays
	if workDays == nil {
		workDays = defaults.WorkDays
	}
	colorTags := req.ColorTags
	if colorTags == nil {
		colorTags = defaults.ColorTags
	}

	return tracker.WorkConfig{
		WorkStart:     workStart,
		WorkEnd:       workEnd,
		LunchDuration: time.Duration(intOr(req.LunchDurationMinutes, defaults.LunchDurationMinutes)) * time.Minute,
		WorkDays:      tracker.WorkDaysFromISO(workDays),

		DefaultCategory:   strOr(req.DefaultService, defaults.DefaultService),
		OOOCategory:       strOr(req.OOOService, defaults.OOOService),
		FocusTimeCategory: strOr(req.FocusTimeService, defaults.FocusTimeService),
		UnlabeledCategory: strOr(req.UnlabeledService, defaults.UnlabeledService),

		UseColorTags:   boolOr(req.UseColorTags, defaults.UseColorTags),
		ColorTags:      colorTags,
		GroupUnlabeled: boolOr(req.GroupUnlabeled, defaults.GroupUnlabeled),
	}, nil
}

func strOr(v *string, def string) string {
	if v != nil {
		return *v
	}
	return def
}

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

func boolOr(v *bool, def bool) bool {
	if v != nil {
		return *v
	}
	return def
}

// --- Response DTOs ---

type categoryResp struct {
	Name       string `json:"name"`
	Duration   string `json:"duration"`
	RawSeconds int64  `json:"raw_seconds"`
}

type weekResp struct {
	StartDate  response.Date  `json:"start_date"`
	EndDate    response.Date  `json:"end_date"`
	Categories []categoryResp `json:"categories"`
	TotalHours string         `json:"total_hours"`
	RawSeconds int64          `json:"raw_seconds"`
}

type periodCategoryResp struct {
	Name       string  `json:"name"`
	Duration   string  `json:"duration"`
	RawSeconds int64   `json:"raw_seconds"`
	Percentage float64 `json:"percentage"`
}

type summaryResp struct {
	StartDate    response.Date        `json:"start_date"`
	EndDate      response.Date        `json:"end_date"`
	TimeZone     string               `json:"time_zone"`
	Events       int                  `json:"events"`
	Weeks        []weekResp           `json:"weeks"`
	PeriodTotals []periodCategoryResp `json:"period_totals"`
	TotalHours   string               `json:"total_hours"`
	RawSeconds   int64                `json:"raw_seconds"`
}

// newSummaryResp flattens the week map into sorted week blocks plus
// period totals. Entries at or under one second are dropped so rounding
// artifacts never surface to the caller.
func (h *handler) newSummaryResp(out tracker.SummarizeOutput) summaryResp {
	resp := summaryResp{
		StartDate: response.Date(out.StartDate),
		EndDate:   response.Date(out.EndDate),
		TimeZone:  out.Timezone,
		Events:    out.Events,
		Weeks:     []weekResp{},
	}

	weekStarts := make([]string, 0, len(out.Summary))
	for k := range out.Summary {
		weekStarts = append(weekStarts, k)
	}
	sort.Strings(weekStarts)

	periodTotals := make(map[string]time.Duration)
	var grandTotal time.Duration

	for _, weekKey := range weekStarts {
		totals := out.Summary[weekKey]
		if len(totals) == 0 {
			continue
		}

		weekStart, err := time.Parse(response.DateFormat, weekKey)
		if err != nil {
			continue
		}
		weekEnd := weekStart.AddDate(0, 0, 6)
		if endDate := out.EndDate; weekEnd.After(endDate) {
			weekEnd = endDate
		}

		names := make([]string, 0, len(totals))
		for name := range totals {
			names = append(names, name)
		}
		sort.Strings(names)

		week := weekResp{
			StartDate:  response.Date(weekStart),
			EndDate:    response.Date(weekEnd),
			Categories: []categoryResp{},
		}
		var weekTotal time.Duration
		for _, name := range names {
			d := totals[name]
			if d <= time.Second {
				continue
			}
			week.Categories = append(week.Categories, categoryResp{
				Name:       name,
				Duration:   formatHours(d),
				RawSeconds: int64(d.Seconds()),
			})
			weekTotal += d
			periodTotals[name] += d
			grandTotal += d
		}
		week.TotalHours = formatHours(weekTotal)
		week.RawSeconds = int64(weekTotal.Seconds())
		resp.Weeks = append(resp.Weeks, week)
	}

	names := make([]string, 0, len(periodTotals))
	for name := range periodTotals {
		names = append(names, name)
	}
	sort.Strings(names)

	resp.PeriodTotals = []periodCategoryResp{}
	for _, name := range names {
		d := periodTotals[name]
		if d <= time.Second {
			continue
		}
		var pct float64
		if grandTotal > 0 {
			pct = math.Round(float64(d)/float64(grandTotal)*1000) / 10
		}
		resp.PeriodTotals = append(resp.PeriodTotals, periodCategoryResp{
			Name:       name,
			Duration:   formatHours(d),
			RawSeconds: int64(d.Seconds()),
			Percentage: pct,
		})
	}

	resp.TotalHours = formatHours(grandTotal)
	resp.RawSeconds = int64(grandTotal.Seconds())
	return resp
}

// formatHours renders a duration as decimal hours, e.g. "7.5h".
// Sub-second negative residue from interval arithmetic clamps to zero.
func formatHours(d time.Duration) string {
	s := d.Seconds()
	if s > -1 && s < 0 {
		s = 0
	}
	return fmt.Sprintf("%.1fh", s/3600)
}

type colorResp struct {
	ID         string `json:"id"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

type colorsResp struct {
	Colors []colorResp `json:"colors"`
}

func (h *handler) newColorsResp(out tracker.ListColorsOutput) colorsResp {
	colors := make([]colorResp, len(out.Colors))
	for i, c := range out.Colors {
		colors[i] = colorResp{
			ID:         c.ID,
			Background: c.Background,
			Foreground: c.Foreground,
		}
	}
	return colorsResp{Colors: colors}
}
