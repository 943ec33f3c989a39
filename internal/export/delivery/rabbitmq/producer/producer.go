package producer

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	rmqDelivery "mediasearch-srv/internal/export/delivery/rabbitmq"
	"mediasearch-srv/internal/model"
	pkgRabbitMQ "mediasearch-srv/pkg/rabbitmq"
)

// PublishExportJob queues one job as a persistent message.
func (p *implProducer) PublishExportJob(ctx context.Context, job model.ExportJob) error {
	body, err := json.Marshal(rmqDelivery.ToJobMessage(job))
	if err != nil {
		return fmt.Errorf("marshal export job: %w", err)
	}

	err = p.ch.Publish(ctx, pkgRabbitMQ.PublishArgs{
		RoutingKey: rmqDelivery.QueueExportJobs,
		Msg: pkgRabbitMQ.Publishing{
			ContentType:  pkgRabbitMQ.ContentTypeJSON,
			DeliveryMode: amqp.Persistent,
			MessageId:    job.ID,
			Body:         body,
		},
	})
	if err != nil {
		p.l.Errorf(ctx, "export.delivery.rabbitmq.producer.PublishExportJob: Failed to publish job %s: %v", job.ID, err)
		return err
	}
	return nil
}
