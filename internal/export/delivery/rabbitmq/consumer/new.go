package consumer

import (
	"fmt"

	"mediasearch-srv/internal/export"
	"mediasearch-srv/pkg/log"
	pkgRabbitMQ "mediasearch-srv/pkg/rabbitmq"
)

// Config holds the configuration for the export job consumer
type Config struct {
	Logger     log.Logger
	Connection pkgRabbitMQ.IRabbitMQ
	UseCase    export.UseCase
}

// Consumer pulls export jobs off the queue and runs them.
type Consumer struct {
	l    log.Logger
	conn pkgRabbitMQ.IRabbitMQ
	uc   export.UseCase
	ch   pkgRabbitMQ.IChannel
}

// New creates a new export consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.Connection == nil {
		return nil, fmt.Errorf("rabbitmq connection is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	return &Consumer{
		l:    cfg.Logger,
		conn: cfg.Connection,
		uc:   cfg.UseCase,
	}, nil
}

// Close closes the consumer channel.
func (c *Consumer) Close() error {
	if c.ch != nil {
		return c.ch.Close()
	}
	return nil
}
