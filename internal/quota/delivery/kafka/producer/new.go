package producer

import (
	"mediasearch-srv/internal/quota"
	pkgKafka "mediasearch-srv/pkg/kafka"
	"mediasearch-srv/pkg/log"
)

// Producer interface for the quota domain
type Producer interface {
	quota.Producer
}

// implProducer implements the Producer interface
type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new quota producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
