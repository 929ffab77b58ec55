package http

import (
	"github.com/gin-gonic/gin"

	"calendar-time-tracker/config"
	"calendar-time-tracker/internal/tracker"
	"calendar-time-tracker/pkg/log"
)

// Handler is the public interface for the tracker HTTP delivery layer.
type Handler interface {
	Summarize(c *gin.Context)
	Colors(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       tracker.UseCase
	defaults config.TrackerConfig
}

// New creates a new HTTP handler for the tracker domain. The defaults
// fill any working-hours or category keys the request config omits.
func New(l log.Logger, uc tracker.UseCase, defaults config.TrackerConfig) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		defaults: defaults,
	}
}

var _ Handler = (*handler)(nil)
