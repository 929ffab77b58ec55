package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	trackerGroup := rg.Group("/tracker")
	{
		trackerGroup.POST("/summary", h.Summarize)
		trackerGroup.GET("/colors", h.Colors)
	}
}
