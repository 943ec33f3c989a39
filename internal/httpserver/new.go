package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"mediasearch-srv/config"
	"mediasearch-srv/internal/quota"
	"mediasearch-srv/pkg/discord"
	pkgJWT "mediasearch-srv/pkg/jwt"
	pkgKafka "mediasearch-srv/pkg/kafka"
	"mediasearch-srv/pkg/log"
	"mediasearch-srv/pkg/providers"
	pkgRabbitMQ "mediasearch-srv/pkg/rabbitmq"
	pkgRedis "mediasearch-srv/pkg/redis"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Backends
	postgresDB    *sql.DB
	redisClient   pkgRedis.IRedis
	kafkaProducer pkgKafka.IProducer
	rabbitConn    pkgRabbitMQ.IRabbitMQ

	// Authentication & Security Configuration
	config     *config.Config
	jwtManager pkgJWT.IManager

	// Shared domain state
	registry *providers.Registry
	quotaUC  quota.UseCase

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Backends
	PostgresDB    *sql.DB
	RedisClient   pkgRedis.IRedis
	KafkaProducer pkgKafka.IProducer
	RabbitConn    pkgRabbitMQ.IRabbitMQ

	// Authentication & Security Configuration
	Config     *config.Config
	JWTManager pkgJWT.IManager

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB:    cfg.PostgresDB,
		redisClient:   cfg.RedisClient,
		kafkaProducer: cfg.KafkaProducer,
		rabbitConn:    cfg.RabbitConn,

		config:     cfg.Config,
		jwtManager: cfg.JWTManager,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.rabbitConn == nil {
		return errors.New("rabbitmq connection is required")
	}
	// kafkaProducer and discord are optional
	return nil
}
