package export

import (
	"context"
	"io"

	"mediasearch-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// StreamAllContent writes one CSV table with every matching story of
	// every query, in query order, to w while fetching. Rows reach the
	// writer page by page; a mid-stream provider failure truncates the
	// output. Cancellation is honored between pages.
	StreamAllContent(ctx context.Context, sc model.Scope, input ContentExportInput, w io.Writer) error

	// StreamQuerySetZip writes a ZIP archive with one CSV per query to w.
	StreamQuerySetZip(ctx context.Context, sc model.Scope, input ContentExportInput, w io.Writer) error

	// EnqueueEmailExport validates the job size against the configured
	// bounds and queues it for background delivery.
	EnqueueEmailExport(ctx context.Context, sc model.Scope, input EmailExportInput) (EnqueueOutput, error)

	// RunEmailExport executes a queued job: fetch everything, assemble,
	// zip, email. Nothing is sent unless every step succeeded.
	RunEmailExport(ctx context.Context, job model.ExportJob) error
}

// Producer queues export jobs for the background worker.
type Producer interface {
	PublishExportJob(ctx context.Context, job model.ExportJob) error
}
