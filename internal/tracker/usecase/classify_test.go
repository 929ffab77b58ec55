package usecase

import (
	"testing"

	"calendar-time-tracker/internal/tracker"
)

func classifyConfig() tracker.WorkConfig {
	return tracker.WorkConfig{
		DefaultCategory:   "DEFAULT",
		OOOCategory:       "OUT OF OFFICE",
		FocusTimeCategory: "FOCUS",
		UnlabeledCategory: "UNLABELED",
		UseColorTags:      true,
		ColorTags:         map[string]string{"1": "RED", "2": "BLUE"},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ev   tracker.RawEvent
		cfg  func(tracker.WorkConfig) tracker.WorkConfig
		want string
	}{
		{
			name: "out of office wins over everything",
			ev:   tracker.RawEvent{Summary: "Focus Time block", ColorID: "1", EventType: tracker.EventTypeOutOfOffice},
			want: "OUT OF OFFICE",
		},
		{
			name: "focus time by event type",
			ev:   tracker.RawEvent{Summary: "Deep work", EventType: tracker.EventTypeFocusTime},
			want: "FOCUS",
		},
		{
			name: "focus time by summary prefix, case insensitive",
			ev:   tracker.RawEvent{Summary: "FOCUS TIME: writing"},
			want: "FOCUS",
		},
		{
			name: "configured color overrides focus time",
			ev:   tracker.RawEvent{Summary: "Focus Time block", ColorID: "1", EventType: tracker.EventTypeFocusTime},
			want: "RED",
		},
		{
			name: "unconfigured color keeps focus time",
			ev:   tracker.RawEvent{Summary: "Focus Time block", ColorID: "9", EventType: tracker.EventTypeFocusTime},
			want: "FOCUS",
		},
		{
			name: "focus time with color but tags disabled",
			ev:   tracker.RawEvent{Summary: "Focus Time block", ColorID: "1"},
			cfg: func(c tracker.WorkConfig) tracker.WorkConfig {
				c.UseColorTags = false
				return c
			},
			want: "FOCUS",
		},
		{
			name: "color tag match",
			ev:   tracker.RawEvent{Summary: "Sprint review", ColorID: "2"},
			want: "BLUE",
		},
		{
			name: "color tags disabled falls through to default",
			ev:   tracker.RawEvent{Summary: "Sprint review", ColorID: "2"},
			cfg: func(c tracker.WorkConfig) tracker.WorkConfig {
				c.UseColorTags = false
				return c
			},
			want: "DEFAULT",
		},
		{
			name: "unknown color grouped as unlabeled",
			ev:   tracker.RawEvent{Summary: "Something", ColorID: "7"},
			cfg: func(c tracker.WorkConfig) tracker.WorkConfig {
				c.GroupUnlabeled = true
				return c
			},
			want: "UNLABELED",
		},
		{
			name: "unknown color without grouping falls to default",
			ev:   tracker.RawEvent{Summary: "Something", ColorID: "7"},
			want: "DEFAULT",
		},
		{
			name: "empty summary, no color",
			ev:   tracker.RawEvent{Summary: ""},
			want: "UNLABELED",
		},
		{
			name: "whitespace summary",
			ev:   tracker.RawEvent{Summary: "   "},
			want: "UNLABELED",
		},
		{
			name: "plain event",
			ev:   tracker.RawEvent{Summary: "1:1 with Ana"},
			want: "DEFAULT",
		},
		{
			name: "unrecognized event type treated as default",
			ev:   tracker.RawEvent{Summary: "Birthday", EventType: "birthday"},
			want: "DEFAULT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := classifyConfig()
			if tt.cfg != nil {
				cfg = tt.cfg(cfg)
			}
			if got := classify(tt.ev, cfg); got != tt.want {
				t.Errorf("classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyEmptyConfig(t *testing.T) {
	// The classifier performs no validation: an empty config propagates
	// empty labels.
	got := classify(tracker.RawEvent{EventType: tracker.EventTypeOutOfOffice}, tracker.WorkConfig{})
	if got != "" {
		t.Errorf("expected empty label from empty config, got %q", got)
	}
}

func TestClassifyRuleOrder(t *testing.T) {
	want := []string{"OutOfOffice", "FocusTime", "ColoredTag", "UnlabeledColor", "EmptySummary", "Default"}
	if len(classifyRules) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(classifyRules))
	}
	for i, rule := range classifyRules {
		if rule.name != want[i] {
			t.Errorf("rule %d = %q, want %q", i, rule.name, want[i])
		}
	}
}
