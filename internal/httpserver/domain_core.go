package httpserver

import (
	"context"
	"time"

	quotaPostgre "mediasearch-srv/internal/quota/repository/postgre"
	quotaRedis "mediasearch-srv/internal/quota/repository/redis"
	quotaUsecase "mediasearch-srv/internal/quota/usecase"
	pkgHTTP "mediasearch-srv/pkg/http"
	"mediasearch-srv/pkg/providers"

	quotaProducer "mediasearch-srv/internal/quota/delivery/kafka/producer"
)

// setupCoreDomains initializes the provider registry and the quota usecase
// shared by every other domain.
func (srv *HTTPServer) setupCoreDomains(ctx context.Context) error {
	client := pkgHTTP.NewClient(pkgHTTP.ClientConfig{
		Timeout: time.Duration(srv.config.Providers.Timeout) * time.Second,
	})

	srv.registry = providers.NewRegistry(srv.l, client, srv.redisClient, providers.Config{
		BaseURLs: srv.config.Providers.BaseURLs,
		APIKeys:  srv.config.Providers.APIKeys,
		Timeout:  time.Duration(srv.config.Providers.Timeout) * time.Second,
		CacheTTL: time.Duration(srv.config.Providers.CacheTTL) * time.Second,
	})

	counterRepo := quotaRedis.New(srv.redisClient, srv.l)
	historyRepo := quotaPostgre.New(srv.postgresDB, srv.l)

	var producer quotaProducer.Producer
	if srv.kafkaProducer != nil {
		producer = quotaProducer.New(srv.l, srv.kafkaProducer)
	}

	srv.quotaUC = quotaUsecase.New(counterRepo, historyRepo, producer, srv.l, quotaUsecase.Config{
		Window:          srv.config.Quota.Window(),
		DefaultLimit:    srv.config.Quota.DefaultLimit,
		StaffExempt:     srv.config.Quota.StaffExempt,
		StaffMultiplier: srv.config.Quota.StaffMultiplier,
	})

	srv.l.Infof(ctx, "Core domains (Providers, Quota) initialized")
	return nil
}
