package export

import "mediasearch-srv/internal/model"

// ContentExportInput describes a synchronous download: one or more queries
// whose matching stories are assembled while the connection is open.
type ContentExportInput struct {
	Queries []model.QueryDescriptor
	Kind    model.ExportKind
}

// EmailExportInput describes an asynchronous export delivered as a zipped
// attachment.
type EmailExportInput struct {
	Queries []model.QueryDescriptor
	Email   string
}

// EnqueueOutput is returned when a job was accepted.
type EnqueueOutput struct {
	JobID string
}
