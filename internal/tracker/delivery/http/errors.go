package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-time-tracker/internal/tracker"
	"calendar-time-tracker/pkg/response"
)

// mapError translates domain/use-case errors into HTTP responses.
// Anything not caused by the request is a 500.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tracker.ErrInvalidDateRange),
		errors.Is(err, tracker.ErrInvalidTimezone),
		errors.Is(err, tracker.ErrInvalidPreset):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
