package tracker

import "errors"

var (
	ErrInvalidDateRange = errors.New("end date is before start date")
	ErrInvalidTimezone  = errors.New("invalid timezone")
	ErrInvalidPreset    = errors.New("unknown range preset")
	ErrEventFetch       = errors.New("failed to fetch calendar events")
)
