package consumer

import (
	"context"

	"github.com/IBM/sarama"
)

type chargeRecordedHandler struct {
	consumer *Consumer
}

func (h *chargeRecordedHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *chargeRecordedHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *chargeRecordedHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.consumer.handleChargeRecordedMessage(msg); err != nil {
			h.consumer.l.Errorf(context.Background(), "quota.delivery.kafka.consumer.ConsumeClaim: Failed to process charge message: %v", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
