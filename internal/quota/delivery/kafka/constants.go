package kafka

const (
	// TopicQuotaCharges carries one message per quota charge.
	TopicQuotaCharges = "quota.charges"

	// ConsumerGroupQuotaHistory is the worker group persisting charge history.
	ConsumerGroupQuotaHistory = "mediasearch-quota-history"
)
