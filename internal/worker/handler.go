package worker

import (
	"context"
	"fmt"
	"time"

	exportConsumer "mediasearch-srv/internal/export/delivery/rabbitmq/consumer"
	exportProducer "mediasearch-srv/internal/export/delivery/rabbitmq/producer"
	exportUsecase "mediasearch-srv/internal/export/usecase"
	quotaConsumer "mediasearch-srv/internal/quota/delivery/kafka/consumer"
	quotaProducer "mediasearch-srv/internal/quota/delivery/kafka/producer"
	quotaPostgre "mediasearch-srv/internal/quota/repository/postgre"
	quotaRedis "mediasearch-srv/internal/quota/repository/redis"
	quotaUsecase "mediasearch-srv/internal/quota/usecase"
	"mediasearch-srv/pkg/email"
	pkgHTTP "mediasearch-srv/pkg/http"
	"mediasearch-srv/pkg/providers"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	exportConsumer *exportConsumer.Consumer
	quotaConsumer  *quotaConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *WorkerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	client := pkgHTTP.NewClient(pkgHTTP.ClientConfig{
		Timeout: time.Duration(srv.config.Providers.Timeout) * time.Second,
	})

	registry := providers.NewRegistry(srv.l, client, srv.redisClient, providers.Config{
		BaseURLs: srv.config.Providers.BaseURLs,
		APIKeys:  srv.config.Providers.APIKeys,
		Timeout:  time.Duration(srv.config.Providers.Timeout) * time.Second,
		CacheTTL: time.Duration(srv.config.Providers.CacheTTL) * time.Second,
	})

	// Quota domain. Export jobs charge per fetched page, so the worker
	// carries the same quota wiring as the API server.
	counterRepo := quotaRedis.New(srv.redisClient, srv.l)
	historyRepo := quotaPostgre.New(srv.postgresDB, srv.l)

	var chargeProducer quotaProducer.Producer
	if srv.kafkaProducer != nil {
		chargeProducer = quotaProducer.New(srv.l, srv.kafkaProducer)
	}

	quotaUC := quotaUsecase.New(counterRepo, historyRepo, chargeProducer, srv.l, quotaUsecase.Config{
		Window:          srv.config.Quota.Window(),
		DefaultLimit:    srv.config.Quota.DefaultLimit,
		StaffExempt:     srv.config.Quota.StaffExempt,
		StaffMultiplier: srv.config.Quota.StaffMultiplier,
	})

	srv.l.Infof(ctx, "Quota domain initialized")

	// Export domain.
	sender, err := email.New(email.Config{
		Host:     srv.config.SMTP.Host,
		Port:     srv.config.SMTP.Port,
		Username: srv.config.SMTP.Username,
		Password: srv.config.SMTP.Password,
		From:     srv.config.SMTP.From,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create email sender: %w", err)
	}

	jobProducer, err := exportProducer.New(srv.l, srv.rabbitConn)
	if err != nil {
		return nil, fmt.Errorf("failed to create export producer: %w", err)
	}

	exportUC := exportUsecase.New(registry, quotaUC, jobProducer, sender, srv.l, exportUsecase.Config{
		MinEmailStories: srv.config.Export.MinEmailStories,
		MaxEmailStories: srv.config.Export.MaxEmailStories,
	})

	exportCons, err := exportConsumer.New(exportConsumer.Config{
		Logger:     srv.l,
		Connection: srv.rabbitConn,
		UseCase:    exportUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create export consumer: %w", err)
	}

	srv.l.Infof(ctx, "Export domain initialized")

	consumers := &domainConsumers{
		exportConsumer: exportCons,
	}

	// The audit consumer only runs when Kafka is configured; the charge
	// counters in Redis stay authoritative either way.
	if len(srv.config.Kafka.Brokers) > 0 {
		quotaCons, err := quotaConsumer.New(quotaConsumer.Config{
			Logger:  srv.l,
			Brokers: srv.config.Kafka.Brokers,
			UseCase: quotaUC,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create quota consumer: %w", err)
		}
		consumers.quotaConsumer = quotaCons

		srv.l.Infof(ctx, "Quota audit consumer initialized")
	}

	return consumers, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *WorkerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.exportConsumer.ConsumeExportJobs(ctx); err != nil {
		return fmt.Errorf("failed to start export consumer: %w", err)
	}

	if consumers.quotaConsumer != nil {
		if err := consumers.quotaConsumer.ConsumeChargeEvents(ctx); err != nil {
			return fmt.Errorf("failed to start quota consumer: %w", err)
		}
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *WorkerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.exportConsumer != nil {
		if err := consumers.exportConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing export consumer: %v", err)
		}
	}

	if consumers.quotaConsumer != nil {
		if err := consumers.quotaConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing quota consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
