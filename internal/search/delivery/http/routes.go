package http

import (
	"mediasearch-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/search")
	api.Use(mw.Auth())
	{
		api.POST("/total-count", h.TotalCount)
		api.POST("/counts-over-time", h.CountOverTime)
		api.POST("/counts-over-time/download", h.DownloadCountOverTime)
		api.POST("/sample", h.Sample)
		api.POST("/story", h.StoryDetail)
		api.POST("/story-list", h.StoryList)
		api.POST("/sources", h.Sources)
		api.POST("/sources/download", h.DownloadSources)
		api.POST("/languages", h.Languages)
		api.POST("/languages/download", h.DownloadLanguages)
		api.POST("/words", h.Words)
		api.POST("/words/download", h.DownloadWords)
	}
}
