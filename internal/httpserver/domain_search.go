package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"mediasearch-srv/internal/middleware"
	searchHTTP "mediasearch-srv/internal/search/delivery/http"
	searchUsecase "mediasearch-srv/internal/search/usecase"
)

func (srv *HTTPServer) setupSearchDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := searchUsecase.New(srv.registry, srv.quotaUC, srv.l, searchUsecase.DefaultConfig())

	handler := searchHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Search domain registered")
	return nil
}
