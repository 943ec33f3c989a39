package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"mediasearch-srv/internal/model"
	kafkaDelivery "mediasearch-srv/internal/quota/delivery/kafka"
)

// handleChargeRecordedMessage unmarshals one audit event and delegates to
// the usecase. Malformed messages are skipped, not retried.
func (c *Consumer) handleChargeRecordedMessage(msg *sarama.ConsumerMessage) error {
	ctx := context.Background()

	var message kafkaDelivery.ChargeRecordedMessage
	if err := json.Unmarshal(msg.Value, &message); err != nil {
		c.l.Warnf(ctx, "quota.delivery.kafka.consumer.handleChargeRecordedMessage: Invalid message format (skipping): %v", err)
		return nil
	}

	if message.ID == "" || message.UserID == "" || message.Provider == "" {
		c.l.Warnf(ctx, "quota.delivery.kafka.consumer.handleChargeRecordedMessage: Missing required fields (skipping)")
		return nil
	}

	event := model.QuotaChargeEvent{
		ID:        message.ID,
		UserID:    message.UserID,
		IsStaff:   message.IsStaff,
		Provider:  message.Provider,
		Operation: message.Operation,
		Weight:    message.Weight,
		ChargedAt: message.ChargedAt,
	}

	if err := c.uc.RecordHistory(ctx, event); err != nil {
		c.l.Errorf(ctx, "quota.delivery.kafka.consumer.handleChargeRecordedMessage: usecase RecordHistory failed: %v", err)
		return fmt.Errorf("usecase error: %w", err)
	}
	return nil
}
