package worker

import (
	"fmt"
)

// New creates a new worker server with dependency validation
func New(cfg Config) (*WorkerServer, error) {
	srv := &WorkerServer{
		l:             cfg.Logger,
		config:        cfg.Config,
		postgresDB:    cfg.PostgresDB,
		redisClient:   cfg.RedisClient,
		rabbitConn:    cfg.RabbitConn,
		kafkaProducer: cfg.KafkaProducer,
		discord:       cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided
func (srv *WorkerServer) validate() error {
	// Core Configuration
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if srv.config == nil {
		return fmt.Errorf("config is required")
	}

	// Infrastructure clients
	if srv.postgresDB == nil {
		return fmt.Errorf("postgres db is required")
	}
	if srv.redisClient == nil {
		return fmt.Errorf("redis client is required")
	}
	if srv.rabbitConn == nil {
		return fmt.Errorf("rabbitmq connection is required")
	}

	// Email jobs terminate in an SMTP delivery, so the worker cannot run
	// without a configured relay.
	if srv.config.SMTP.Host == "" {
		return fmt.Errorf("smtp host is required")
	}

	// kafkaProducer and discord are optional
	return nil
}
