package worker

import (
	"context"
	"database/sql"

	"mediasearch-srv/config"
	"mediasearch-srv/pkg/discord"
	pkgKafka "mediasearch-srv/pkg/kafka"
	"mediasearch-srv/pkg/log"
	pkgRabbitMQ "mediasearch-srv/pkg/rabbitmq"
	pkgRedis "mediasearch-srv/pkg/redis"
)

// WorkerServer is the background job orchestrator. It runs the export job
// consumer (RabbitMQ) and the quota audit consumer (Kafka).
type WorkerServer struct {
	// Core Configuration
	l      log.Logger
	config *config.Config

	// Infrastructure clients
	postgresDB    *sql.DB
	redisClient   pkgRedis.IRedis
	rabbitConn    pkgRabbitMQ.IRabbitMQ
	kafkaProducer pkgKafka.IProducer

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config holds all dependencies for the worker server
type Config struct {
	// Core Configuration
	Logger log.Logger
	Config *config.Config

	// Infrastructure clients
	PostgresDB    *sql.DB
	RedisClient   pkgRedis.IRedis
	RabbitConn    pkgRabbitMQ.IRabbitMQ
	KafkaProducer pkgKafka.IProducer

	// Monitoring & Notification
	Discord discord.IDiscord
}

// Run starts the worker server and blocks until context is cancelled.
// It initializes all domain layers, starts consumers, and handles graceful shutdown.
func (srv *WorkerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		return err
	}

	srv.l.Info(ctx, "Worker Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Worker Server stopped gracefully")
	return nil
}
