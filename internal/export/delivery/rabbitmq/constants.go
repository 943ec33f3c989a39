package rabbitmq

const (
	// QueueExportJobs is the durable queue of pending email exports.
	QueueExportJobs = "export.jobs"
)
