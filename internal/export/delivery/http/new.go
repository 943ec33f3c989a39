package http

import (
	"mediasearch-srv/internal/export"
	"mediasearch-srv/internal/middleware"
	"mediasearch-srv/pkg/discord"
	"mediasearch-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the export HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      export.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc export.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
