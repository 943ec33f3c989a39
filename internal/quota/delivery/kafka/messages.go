package kafka

import "time"

// ChargeRecordedMessage - Kafka message for quota.charges
type ChargeRecordedMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	IsStaff   bool      `json:"is_staff"`
	Provider  string    `json:"provider"`
	Operation string    `json:"operation"`
	Weight    int64     `json:"weight"`
	ChargedAt time.Time `json:"charged_at"`
}
