package consumer

import (
	"context"

	kafkaDelivery "mediasearch-srv/internal/quota/delivery/kafka"
	pkgKafka "mediasearch-srv/pkg/kafka"
)

// ConsumeChargeEvents starts consuming the quota audit stream.
func (c *Consumer) ConsumeChargeEvents(ctx context.Context) error {
	group, err := pkgKafka.NewConsumer(pkgKafka.ConsumerConfig{
		Brokers: c.brokers,
		GroupID: kafkaDelivery.ConsumerGroupQuotaHistory,
	})
	if err != nil {
		return err
	}
	c.chargesGroup = group

	handler := &chargeRecordedHandler{consumer: c}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := group.ConsumeWithContext(ctx, []string{kafkaDelivery.TopicQuotaCharges}, handler); err != nil {
					c.l.Errorf(ctx, "Consumer error: %v", err)
				}
			}
		}
	}()

	go func() {
		for err := range group.Errors() {
			c.l.Errorf(ctx, "Consumer group error: %v", err)
		}
	}()

	c.l.Infof(ctx, "Consuming %s", kafkaDelivery.TopicQuotaCharges)

	return nil
}
