package consumer

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	rmqDelivery "mediasearch-srv/internal/export/delivery/rabbitmq"
	pkgRabbitMQ "mediasearch-srv/pkg/rabbitmq"
)

// ConsumeExportJobs starts pulling jobs until the context is cancelled.
// Jobs are acked only after they ran; a redelivered job runs again and
// produces fresh quota charges, which is accepted for this audit model.
func (c *Consumer) ConsumeExportJobs(ctx context.Context) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return err
	}
	c.ch = ch

	if _, err := ch.QueueDeclare(pkgRabbitMQ.QueueArgs{
		Name:    rmqDelivery.QueueExportJobs,
		Durable: true,
	}); err != nil {
		return err
	}

	deliveries, err := ch.Consume(pkgRabbitMQ.ConsumeArgs{
		Queue:    rmqDelivery.QueueExportJobs,
		Consumer: "mediasearch-export-worker",
	})
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-deliveries:
				if !ok {
					return
				}
				c.handleDelivery(ctx, msg)
			}
		}
	}()

	c.l.Infof(ctx, "Consuming %s", rmqDelivery.QueueExportJobs)
	return nil
}

func (c *Consumer) handleDelivery(ctx context.Context, msg amqp.Delivery) {
	var message rmqDelivery.ExportJobMessage
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		c.l.Warnf(ctx, "export.delivery.rabbitmq.consumer.handleDelivery: Invalid message format (dropping): %v", err)
		_ = msg.Nack(false, false)
		return
	}

	job, err := message.ToJob()
	if err != nil {
		c.l.Warnf(ctx, "export.delivery.rabbitmq.consumer.handleDelivery: Invalid job %s (dropping): %v", message.ID, err)
		_ = msg.Nack(false, false)
		return
	}

	if err := c.uc.RunEmailExport(ctx, job); err != nil {
		// Terminal: the job mailed nothing and will not be retried.
		c.l.Errorf(ctx, "export.delivery.rabbitmq.consumer.handleDelivery: Job %s failed: %v", job.ID, err)
		_ = msg.Nack(false, false)
		return
	}

	_ = msg.Ack(false)
}
