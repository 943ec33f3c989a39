package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"mediasearch-srv/internal/model"
	kafkaDelivery "mediasearch-srv/internal/quota/delivery/kafka"
)

// PublishChargeRecorded publishes one charge event, keyed by user so a
// user's history stays ordered within a partition.
func (p *implProducer) PublishChargeRecorded(ctx context.Context, event model.QuotaChargeEvent) error {
	msg := kafkaDelivery.ChargeRecordedMessage{
		ID:        event.ID,
		UserID:    event.UserID,
		IsStaff:   event.IsStaff,
		Provider:  event.Provider,
		Operation: event.Operation,
		Weight:    event.Weight,
		ChargedAt: event.ChargedAt,
	}

	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal charge message: %w", err)
	}

	if err := p.producer.Publish([]byte(event.UserID), value); err != nil {
		p.l.Errorf(ctx, "quota.delivery.kafka.producer.PublishChargeRecorded: Failed to publish charge: %v", err)
		return err
	}
	return nil
}
