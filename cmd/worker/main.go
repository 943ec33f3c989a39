package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mediasearch-srv/config"
	configKafka "mediasearch-srv/config/kafka"
	configPostgre "mediasearch-srv/config/postgre"
	configRabbitMQ "mediasearch-srv/config/rabbitmq"
	configRedis "mediasearch-srv/config/redis"
	kafkaDelivery "mediasearch-srv/internal/quota/delivery/kafka"
	"mediasearch-srv/internal/worker"
	"mediasearch-srv/pkg/discord"
	pkgKafka "mediasearch-srv/pkg/kafka"
	"mediasearch-srv/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting MediaSearch Worker...")

	// PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Info(ctx, "Redis client initialized")

	// RabbitMQ (export job queue)
	rabbitConn, err := configRabbitMQ.Connect(cfg.RabbitMQ)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to RabbitMQ: %v", err)
		return
	}
	defer configRabbitMQ.Disconnect()
	logger.Info(ctx, "RabbitMQ connection initialized")

	// Kafka producer (optional, quota audit stream)
	var kafkaProducer pkgKafka.IProducer
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka, kafkaDelivery.TopicQuotaCharges)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Kafka producer: %v", err)
			return
		}
		defer configKafka.DisconnectProducer()
		logger.Info(ctx, "Kafka producer initialized")
	}

	// Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Info(ctx, "Discord client initialized")
	}

	// Worker server
	srv, err := worker.New(worker.Config{
		Logger:        logger,
		Config:        cfg,
		PostgresDB:    postgresDB,
		RedisClient:   redisClient,
		RabbitConn:    rabbitConn,
		KafkaProducer: kafkaProducer,
		Discord:       discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create worker server: %v", err)
		return
	}

	logger.Info(ctx, "Worker server starting...")
	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "Worker server error: %v", err)
		return
	}

	logger.Info(ctx, "Worker server stopped gracefully")
}
