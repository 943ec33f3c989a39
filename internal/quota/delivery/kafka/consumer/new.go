package consumer

import (
	"fmt"

	"mediasearch-srv/internal/quota"
	pkgKafka "mediasearch-srv/pkg/kafka"
	"mediasearch-srv/pkg/log"
)

// Config holds the configuration for the quota history consumer
type Config struct {
	Logger  log.Logger
	Brokers []string
	UseCase quota.UseCase
}

// Consumer manages the Kafka consumer group for the quota audit stream
type Consumer struct {
	l       log.Logger
	brokers []string
	uc      quota.UseCase

	chargesGroup pkgKafka.IConsumer
}

// New creates a new quota consumer
func New(cfg Config) (*Consumer, error) {
	if cfg.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if cfg.UseCase == nil {
		return nil, fmt.Errorf("usecase is required")
	}
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	return &Consumer{
		l:       cfg.Logger,
		brokers: cfg.Brokers,
		uc:      cfg.UseCase,
	}, nil
}

// Close closes the consumer group
func (c *Consumer) Close() error {
	if c.chargesGroup != nil {
		if err := c.chargesGroup.Close(); err != nil {
			return fmt.Errorf("failed to close charges group: %w", err)
		}
	}
	return nil
}
