package http

import (
	"mediasearch-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/search")
	api.Use(mw.Auth())
	{
		api.POST("/download-all-content", h.DownloadContent)
		api.POST("/download-archive", h.DownloadZip)
		api.POST("/send-email", h.EmailExport)
	}
}
