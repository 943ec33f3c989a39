package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	exportHTTP "mediasearch-srv/internal/export/delivery/http"
	exportProducer "mediasearch-srv/internal/export/delivery/rabbitmq/producer"
	exportUsecase "mediasearch-srv/internal/export/usecase"
	"mediasearch-srv/internal/middleware"
	"mediasearch-srv/pkg/email"
)

func (srv *HTTPServer) setupExportDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	producer, err := exportProducer.New(srv.l, srv.rabbitConn)
	if err != nil {
		return err
	}

	// The API server only enqueues jobs; delivery happens in the worker.
	// The sender is still wired so the wiring matches in both binaries.
	var sender email.ISender
	if srv.config.SMTP.Host != "" {
		sender, err = email.New(email.Config{
			Host:     srv.config.SMTP.Host,
			Port:     srv.config.SMTP.Port,
			Username: srv.config.SMTP.Username,
			Password: srv.config.SMTP.Password,
			From:     srv.config.SMTP.From,
		})
		if err != nil {
			return err
		}
	}

	uc := exportUsecase.New(srv.registry, srv.quotaUC, producer, sender, srv.l, exportUsecase.Config{
		MinEmailStories: srv.config.Export.MinEmailStories,
		MaxEmailStories: srv.config.Export.MaxEmailStories,
	})

	handler := exportHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Export domain registered")
	return nil
}
