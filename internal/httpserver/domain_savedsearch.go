package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"mediasearch-srv/internal/middleware"
	savedsearchHTTP "mediasearch-srv/internal/savedsearch/delivery/http"
	savedsearchPostgre "mediasearch-srv/internal/savedsearch/repository/postgre"
	savedsearchUsecase "mediasearch-srv/internal/savedsearch/usecase"
)

func (srv *HTTPServer) setupSavedSearchDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := savedsearchPostgre.New(srv.postgresDB, srv.l)
	uc := savedsearchUsecase.New(repo, srv.l)

	handler := savedsearchHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "SavedSearch domain registered")
	return nil
}
