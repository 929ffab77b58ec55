package http

import (
	"github.com/gin-gonic/gin"
)

// processSummarizeReq binds and validates the summary request body.
func (h *handler) processSummarizeReq(c *gin.Context) (summarizeReq, error) {
	var req summarizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
