package http

import (
	"testing"
	"time"

	"calendar-time-tracker/config"
	"calendar-time-tracker/internal/tracker"
	"calendar-time-tracker/pkg/response"
)

func dateStr(d response.Date) string {
	return time.Time(d).Format(response.DateFormat)
}

func trackerDefaults() config.TrackerConfig {
	return config.TrackerConfig{
		WorkStartTime:        "09:00",
		WorkEndTime:          "17:00",
		LunchDurationMinutes: 60,
		WorkDays:             []int{0, 1, 2, 3, 4},
		DefaultService:       "TIEMPO NO ETIQUETADO",
		OOOService:           "FUERA DE OFICINA",
		FocusTimeService:     "TIEMPO DE CONCENTRACIÓN",
		UnlabeledService:     "SIN ETIQUETA",
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0.0h"},
		{"whole hours", 7 * time.Hour, "7.0h"},
		{"half hour", 90 * time.Minute, "1.5h"},
		{"rounds to one decimal", 7*time.Hour + 10*time.Minute, "7.2h"},
		{"sub-second negative clamps", -500 * time.Millisecond, "0.0h"},
		{"negative hours pass through", -2 * time.Hour, "-2.0h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatHours(tt.d); got != tt.want {
				t.Errorf("formatHours(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestSummarizeReqValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     summarizeReq
		wantErr bool
	}{
		{"explicit dates", summarizeReq{StartDate: "2024-05-06", EndDate: "2024-05-10"}, false},
		{"preset only", summarizeReq{Range: "last_week"}, false},
		{"missing end date", summarizeReq{StartDate: "2024-05-06"}, true},
		{"empty", summarizeReq{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSummarizeReqToInput(t *testing.T) {
	t.Run("defaults fill omitted config", func(t *testing.T) {
		req := summarizeReq{StartDate: "2024-05-06", EndDate: "2024-05-10"}
		in, err := req.toInput(trackerDefaults())
		if err != nil {
			t.Fatalf("toInput() error = %v", err)
		}
		if in.CalendarID != "primary" {
			t.Errorf("CalendarID = %q, want primary", in.CalendarID)
		}
		if in.Config.WorkStart != (tracker.TimeOfDay{Hour: 9}) {
			t.Errorf("WorkStart = %+v, want 09:00", in.Config.WorkStart)
		}
		if in.Config.LunchDuration != time.Hour {
			t.Errorf("LunchDuration = %v, want 1h", in.Config.LunchDuration)
		}
		if in.Config.DefaultCategory != "TIEMPO NO ETIQUETADO" {
			t.Errorf("DefaultCategory = %q", in.Config.DefaultCategory)
		}
		if !in.Config.WorkDays[time.Monday] || in.Config.WorkDays[time.Saturday] {
			t.Errorf("WorkDays = %v, want Mon-Fri", in.Config.WorkDays)
		}
	})

	t.Run("request overrides win", func(t *testing.T) {
		start := "08:30"
		lunch := 30
		use := true
		req := summarizeReq{
			StartDate:  "2024-05-06",
			EndDate:    "2024-05-10",
			CalendarID: "team@example.com",
			Config: &workConfigReq{
				WorkStartTime:        &start,
				LunchDurationMinutes: &lunch,
				UseColorTags:         &use,
				ColorTags:            map[string]string{"5": "Meetings"},
				WorkDays:             []int{0, 1, 2},
			},
		}
		in, err := req.toInput(trackerDefaults())
		if err != nil {
			t.Fatalf("toInput() error = %v", err)
		}
		if in.CalendarID != "team@example.com" {
			t.Errorf("CalendarID = %q", in.CalendarID)
		}
		if in.Config.WorkStart != (tracker.TimeOfDay{Hour: 8, Minute: 30}) {
			t.Errorf("WorkStart = %+v, want 08:30", in.Config.WorkStart)
		}
		if in.Config.WorkEnd != (tracker.TimeOfDay{Hour: 17}) {
			t.Errorf("WorkEnd = %+v, want default 17:00", in.Config.WorkEnd)
		}
		if in.Config.LunchDuration != 30*time.Minute {
			t.Errorf("LunchDuration = %v", in.Config.LunchDuration)
		}
		if !in.Config.UseColorTags || in.Config.ColorTags["5"] != "Meetings" {
			t.Errorf("color tags not applied: %+v", in.Config)
		}
		if in.Config.WorkDays[time.Thursday] {
			t.Errorf("WorkDays = %v, want Mon-Wed only", in.Config.WorkDays)
		}
	})

	t.Run("rejects inverted dates", func(t *testing.T) {
		req := summarizeReq{StartDate: "2024-05-10", EndDate: "2024-05-06"}
		if _, err := req.toInput(trackerDefaults()); err == nil {
			t.Fatal("toInput() expected error for inverted dates")
		}
	})

	t.Run("rejects malformed work start", func(t *testing.T) {
		bad := "25:99"
		req := summarizeReq{
			StartDate: "2024-05-06",
			EndDate:   "2024-05-10",
			Config:    &workConfigReq{WorkStartTime: &bad},
		}
		if _, err := req.toInput(trackerDefaults()); err == nil {
			t.Fatal("toInput() expected error for bad work_start_time")
		}
	})
}

func TestNewSummaryResp(t *testing.T) {
	h := &handler{}
	out := tracker.SummarizeOutput{
		StartDate: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		Timezone:  "UTC",
		Events:    4,
		Summary: tracker.WeeklySummary{
			"2024-05-13": {
				"FREE": 10 * time.Hour,
			},
			"2024-05-06": {
				"Meetings": 5 * time.Hour,
				"FREE":     30 * time.Hour,
				"Noise":    time.Second, // at the floor, dropped
			},
		},
	}

	resp := h.newSummaryResp(out)

	if dateStr(resp.StartDate) != "2024-05-06" || dateStr(resp.EndDate) != "2024-05-15" {
		t.Errorf("period dates = %s..%s, want 2024-05-06..2024-05-15", dateStr(resp.StartDate), dateStr(resp.EndDate))
	}
	if len(resp.Weeks) != 2 {
		t.Fatalf("weeks = %d, want 2", len(resp.Weeks))
	}
	if dateStr(resp.Weeks[0].StartDate) != "2024-05-06" || dateStr(resp.Weeks[1].StartDate) != "2024-05-13" {
		t.Errorf("weeks not sorted ascending: %s, %s", dateStr(resp.Weeks[0].StartDate), dateStr(resp.Weeks[1].StartDate))
	}
	if dateStr(resp.Weeks[0].EndDate) != "2024-05-12" {
		t.Errorf("first week end = %s, want 2024-05-12", dateStr(resp.Weeks[0].EndDate))
	}
	// The second week runs past the requested range and is capped.
	if dateStr(resp.Weeks[1].EndDate) != "2024-05-15" {
		t.Errorf("second week end = %s, want capped at 2024-05-15", dateStr(resp.Weeks[1].EndDate))
	}

	first := resp.Weeks[0]
	if len(first.Categories) != 2 {
		t.Fatalf("first week categories = %d, want 2 (noise entry dropped)", len(first.Categories))
	}
	if first.Categories[0].Name != "FREE" || first.Categories[1].Name != "Meetings" {
		t.Errorf("categories not sorted: %+v", first.Categories)
	}
	if first.TotalHours != "35.0h" {
		t.Errorf("first week total = %s, want 35.0h", first.TotalHours)
	}

	if resp.TotalHours != "45.0h" {
		t.Errorf("grand total = %s, want 45.0h", resp.TotalHours)
	}
	if len(resp.PeriodTotals) != 2 {
		t.Fatalf("period totals = %d, want 2", len(resp.PeriodTotals))
	}
	free := resp.PeriodTotals[0]
	if free.Name != "FREE" || free.RawSeconds != int64((40 * time.Hour).Seconds()) {
		t.Errorf("FREE period total = %+v", free)
	}
	if free.Percentage != 88.9 {
		t.Errorf("FREE percentage = %v, want 88.9", free.Percentage)
	}
	meetings := resp.PeriodTotals[1]
	if meetings.Percentage != 11.1 {
		t.Errorf("Meetings percentage = %v, want 11.1", meetings.Percentage)
	}
}

func TestNewSummaryRespEmpty(t *testing.T) {
	h := &handler{}
	resp := h.newSummaryResp(tracker.SummarizeOutput{
		StartDate: time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC),
		Timezone:  "UTC",
		Summary:   tracker.WeeklySummary{},
	})
	if len(resp.Weeks) != 0 || len(resp.PeriodTotals) != 0 {
		t.Errorf("expected empty response, got %+v", resp)
	}
	if resp.TotalHours != "0.0h" {
		t.Errorf("total = %s, want 0.0h", resp.TotalHours)
	}
}
