package main

import (
	"context"
	"fmt"
	"time"

	"mediasearch-srv/config"
	configKafka "mediasearch-srv/config/kafka"
	configPostgre "mediasearch-srv/config/postgre"
	configRabbitMQ "mediasearch-srv/config/rabbitmq"
	configRedis "mediasearch-srv/config/redis"
	_ "mediasearch-srv/docs" // Import swagger docs
	"mediasearch-srv/internal/httpserver"
	kafkaDelivery "mediasearch-srv/internal/quota/delivery/kafka"
	"mediasearch-srv/pkg/discord"
	pkgJWT "mediasearch-srv/pkg/jwt"
	pkgKafka "mediasearch-srv/pkg/kafka"
	"mediasearch-srv/pkg/log"
)

// @title       MediaSearch Service API
// @description Media content search, quota metering and CSV export API.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name access_token
// @description Authentication token stored in HttpOnly cookie, issued by the identity service.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Initialize PostgreSQL
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 5. Initialize Kafka producer (optional, quota audit stream)
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

	// 6. Initialize RabbitMQ (export job queue)
	rabbitConn, err := configRabbitMQ.Connect(cfg.RabbitMQ)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to RabbitMQ: %v", err)
		return
	}
	defer configRabbitMQ.Disconnect()
	logger.Info(ctx, "RabbitMQ connection initialized")

	// 7. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 8. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize JWT manager: %v", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized for issuer %s", cfg.JWT.Issuer)

	// 9. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Backends
		PostgresDB:    postgresDB,
		RedisClient:   redisClient,
		KafkaProducer: kafkaProducer,
		RabbitConn:    rabbitConn,

		// Authentication & Security Configuration
		Config:     cfg,
		JWTManager: jwtManager,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
}
