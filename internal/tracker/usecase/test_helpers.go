package usecase

import (
	"context"
	"time"

	"calendar-time-tracker/internal/tracker"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock event source for testing
type mockEventSource struct {
	events    []tracker.RawEvent
	timezone  string
	colors    []tracker.Color
	listErr   error
	tzErr     error
	colorsErr error

	lastTimeMin time.Time
	lastTimeMax time.Time
}

func (m *mockEventSource) ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]tracker.RawEvent, error) {
	m.lastTimeMin, m.lastTimeMax = timeMin, timeMax
	return m.events, m.listErr
}

func (m *mockEventSource) Timezone(ctx context.Context) (string, error) {
	if m.timezone == "" && m.tzErr == nil {
		return "UTC", nil
	}
	return m.timezone, m.tzErr
}

func (m *mockEventSource) Colors(ctx context.Context) ([]tracker.Color, error) {
	return m.colors, m.colorsErr
}
