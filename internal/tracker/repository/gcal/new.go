package gcal

import (
	"calendar-time-tracker/internal/tracker/repository"
	"calendar-time-tracker/pkg/gcalendar"
	"calendar-time-tracker/pkg/log"
)

// implRepository adapts pkg/gcalendar to the repository.EventSource port.
type implRepository struct {
	client *gcalendar.Client
	l      log.Logger
}

// New creates a Google Calendar backed EventSource.
func New(client *gcalendar.Client, l log.Logger) *implRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

var _ repository.EventSource = (*implRepository)(nil)
