package producer

import (
	"mediasearch-srv/internal/export"
	rmqDelivery "mediasearch-srv/internal/export/delivery/rabbitmq"
	"mediasearch-srv/pkg/log"
	pkgRabbitMQ "mediasearch-srv/pkg/rabbitmq"
)

// Producer interface for the export domain
type Producer interface {
	export.Producer
}

// implProducer implements the Producer interface
type implProducer struct {
	l  log.Logger
	ch pkgRabbitMQ.IChannel
}

// New creates a new export producer and declares the durable job queue.
func New(l log.Logger, conn pkgRabbitMQ.IRabbitMQ) (Producer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := ch.QueueDeclare(pkgRabbitMQ.QueueArgs{
		Name:    rmqDelivery.QueueExportJobs,
		Durable: true,
	}); err != nil {
		return nil, err
	}
	return &implProducer{l: l, ch: ch}, nil
}
