package http

import (
	"github.com/gin-gonic/gin"

	"calendar-time-tracker/pkg/response"
)

// Summarize godoc
// @Summary     Compute a weekly time summary
// @Description Fetches calendar events for the requested range, classifies them into categories, and returns per-week totals with free time attributed to the default category.
// @Tags        Tracker
// @Accept      json
// @Produce     json
// @Param       body body summarizeReq true "Date range (explicit or preset) and optional working-hours config overrides"
// @Success     200 {object} summaryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tracker/summary [POST]
func (h *handler) Summarize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSummarizeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput(h.defaults)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Summarize(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Summarize: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// Colors godoc
// @Summary     List provider event colors
// @Description Returns the calendar provider's event color palette, used to build the color_tags configuration.
// @Tags        Tracker
// @Accept      json
// @Produce     json
// @Success     200 {object} colorsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tracker/colors [GET]
func (h *handler) Colors(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListColors(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListColors: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newColorsResp(output))
}
