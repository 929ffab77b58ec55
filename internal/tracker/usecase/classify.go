package usecase

import (
	"strings"

	"calendar-time-tracker/internal/tracker"
)

// focusTimePrefix also catches focus blocks created before the provider
// introduced the dedicated event type.
const focusTimePrefix = "focus time"

// classifyRule is one step of the category precedence chain. It returns
// the category and true when it decides the event; false defers to the
// next rule.
type classifyRule struct {
	name  string
	apply func(ev tracker.RawEvent, cfg tracker.WorkConfig) (string, bool)
}

// classifyRules is evaluated strictly in order; the first match wins.
// Out-of-office beats everything, including color tags. Focus time
// yields to a configured color tag but beats everything below it.
var classifyRules = []classifyRule{
	{
		name: "OutOfOffice",
		apply: func(ev tracker.RawEvent, cfg tracker.WorkConfig) (string, bool) {
			if ev.EventType == tracker.EventTypeOutOfOffice {
				return cfg.OOOCategory, true
			}
			return "", false
		},
	},
	{
		name: "FocusTime",
		apply: func(ev tracker.RawEvent, cfg tracker.WorkConfig) (string, bool) {
			isFocus := ev.EventType == tracker.EventTypeFocusTime ||
				strings.HasPrefix(strings.ToLower(ev.Summary), focusTimePrefix)
			if !isFocus {
				return "", false
			}
			// A configured color tag overrides focus-time classification;
			// defer so the ColoredTag rule decides.
			if cfg.UseColorTags && ev.ColorID != "" {
				if _, tagged := cfg.ColorTags[ev.ColorID]; tagged {
					return "", false
				}
			}
			return cfg.FocusTimeCategory, true
		},
	},
	{
		name: "ColoredTag",
		apply: func(ev tracker.RawEvent, cfg tracker.WorkConfig) (string, bool) {
			if !cfg.UseColorTags || ev.ColorID == "" {
				return "", false
			}
			category, tagged := cfg.ColorTags[ev.ColorID]
			if !tagged {
				return "", false
			}
			return category, true
		},
	},
	{
		name: "UnlabeledColor",
		apply: func(ev tracker.RawEvent, cfg tracker.WorkConfig) (string, bool) {
			if !cfg.GroupUnlabeled || ev.ColorID == "" {
				return "", false
			}
			if _, tagged := cfg.ColorTags[ev.ColorID]; tagged {
				return "", false
			}
			return cfg.UnlabeledCategory, true
		},
	},
	{
		name: "EmptySummary",
		apply: func(ev tracker.RawEvent, cfg tracker.WorkConfig) (string, bool) {
			if strings.TrimSpace(ev.Summary) == "" {
				return cfg.UnlabeledCategory, true
			}
			return "", false
		},
	},
	{
		name: "Default",
		apply: func(ev tracker.RawEvent, cfg tracker.WorkConfig) (string, bool) {
			return cfg.DefaultCategory, true
		},
	},
}

// classify assigns a category label to one raw event. The config is
// assumed fully populated; empty labels propagate as-is.
func classify(ev tracker.RawEvent, cfg tracker.WorkConfig) string {
	for _, rule := range classifyRules {
		if category, ok := rule.apply(ev, cfg); ok {
			return category
		}
	}
	return cfg.DefaultCategory // unreachable, Default always matches
}
