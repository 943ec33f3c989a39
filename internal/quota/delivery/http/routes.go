package http

import (
	"mediasearch-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/quota")
	api.Use(mw.Auth())
	{
		api.GET("/usage", h.Usage)
		api.GET("/history", h.History)
	}
}
