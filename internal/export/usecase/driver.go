package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"mediasearch-srv/internal/export"
	"mediasearch-srv/internal/model"
	"mediasearch-srv/pkg/email"
	"mediasearch-srv/pkg/providers"
)

const (
	opPagedItems = "paged-items"
	opCount      = "count"
)

// admitAll checks quota admission for every provider the job touches,
// before the first page is pulled.
func (uc *implUseCase) admitAll(ctx context.Context, sc model.Scope, queries []model.QueryDescriptor) error {
	seen := map[string]bool{}
	for _, q := range queries {
		if seen[q.ProviderName] {
			continue
		}
		seen[q.ProviderName] = true
		if err := uc.quotaUC.CheckAdmission(ctx, sc, q.ProviderName); err != nil {
			return err
		}
	}
	return nil
}

// forEachPage pulls every page of one query, charging exactly one quota
// unit per page, and hands pages to emit. Cancellation is honored between
// pages.
func (uc *implUseCase) forEachPage(ctx context.Context, sc model.Scope, q model.QueryDescriptor, emit func([]providers.Story) error) error {
	provider, err := uc.resolver.Resolve(q)
	if err != nil {
		return err
	}

	it := provider.AllItems(ctx, q)
	for it.Next(ctx) {
		if err := uc.quotaUC.Charge(ctx, sc, q.ProviderName, opPagedItems, 1); err != nil {
			return err
		}
		if err := emit(it.Page()); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return it.Err()
}

// StreamAllContent streams one CSV table covering every query, in query
// order, to the open connection. Errors after the first row truncate the
// download; the client sees a short file, not a trailer.
func (uc *implUseCase) StreamAllContent(ctx context.Context, sc model.Scope, input export.ContentExportInput, w io.Writer) error {
	if len(input.Queries) == 0 {
		return export.ErrNoQueries
	}
	if err := uc.admitAll(ctx, sc, input.Queries); err != nil {
		return err
	}

	uc.l.Infof(ctx, "export.usecase.StreamAllContent: fetching %d queries for user %s", len(input.Queries), sc.UserID)
	table := export.NewTableWriter(w)

	for _, q := range input.Queries {
		err := uc.forEachPage(ctx, sc, q, func(page []providers.Story) error {
			for _, story := range page {
				if err := table.WriteStory(story); err != nil {
					return err
				}
			}
			// Flush per page so rows reach the client while fetching.
			return table.Flush()
		})
		if err != nil {
			uc.l.Errorf(ctx, "export.usecase.StreamAllContent: query on %s failed mid-stream: %v", q.ProviderName, err)
			return err
		}
	}

	return table.Flush()
}

// StreamQuerySetZip streams a ZIP with one CSV entry per query. Each entry
// gets its own header derived from that query's first story, and its name is
// bound to the query being written.
func (uc *implUseCase) StreamQuerySetZip(ctx context.Context, sc model.Scope, input export.ContentExportInput, w io.Writer) error {
	if len(input.Queries) == 0 {
		return export.ErrNoQueries
	}
	if err := uc.admitAll(ctx, sc, input.Queries); err != nil {
		return err
	}

	kind := input.Kind
	if kind == "" {
		kind = model.ExportKindContent
	}

	archive := export.NewArchiveBuilder(w, export.JobTimestamp(uc.now()), kind)
	for _, q := range input.Queries {
		// The entry is opened on the first page, not before: opening writes
		// the ZIP local header, and a failed first fetch must leave the body
		// untouched so the delivery layer can still answer with an error.
		var table *export.TableWriter
		err := uc.forEachPage(ctx, sc, q, func(page []providers.Story) error {
			if table == nil {
				var name string
				var entryErr error
				table, name, entryErr = archive.NextEntry(q.ProviderName)
				if entryErr != nil {
					return entryErr
				}
				uc.l.Debugf(ctx, "export.usecase.StreamQuerySetZip: writing %s", name)
			}
			for _, story := range page {
				if err := table.WriteStory(story); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		if table == nil {
			// No pages at all: keep one entry per query so empty results
			// still show up in the archive.
			if table, _, err = archive.NextEntry(q.ProviderName); err != nil {
				return err
			}
		}
		if err := table.Flush(); err != nil {
			return err
		}
	}
	return archive.Close()
}

// EnqueueEmailExport validates the total volume against the configured
// bounds and hands the job to the queue. Counting charges one unit per
// query.
func (uc *implUseCase) EnqueueEmailExport(ctx context.Context, sc model.Scope, input export.EmailExportInput) (export.EnqueueOutput, error) {
	if len(input.Queries) == 0 {
		return export.EnqueueOutput{}, export.ErrNoQueries
	}
	if input.Email == "" {
		return export.EnqueueOutput{}, export.ErrMissingEmail
	}
	if err := uc.admitAll(ctx, sc, input.Queries); err != nil {
		return export.EnqueueOutput{}, err
	}

	var total int64
	for _, q := range input.Queries {
		provider, err := uc.resolver.Resolve(q)
		if err != nil {
			return export.EnqueueOutput{}, err
		}
		count, err := provider.Count(ctx, q)
		if err != nil {
			return export.EnqueueOutput{}, err
		}
		if err := uc.quotaUC.Charge(ctx, sc, q.ProviderName, opCount, 1); err != nil {
			return export.EnqueueOutput{}, err
		}
		total += count
	}

	if total < uc.cfg.MinEmailStories {
		return export.EnqueueOutput{}, export.ErrTooFewStories
	}
	if total > uc.cfg.MaxEmailStories {
		return export.EnqueueOutput{}, export.ErrTooManyStories
	}

	job := model.ExportJob{
		ID:      uuid.New().String(),
		UserID:  sc.UserID,
		IsStaff: sc.IsStaff,
		Email:   input.Email,
		Kind:    model.ExportKindContent,
		Queries: input.Queries,
		State:   model.ExportStatePending,
	}
	if err := uc.producer.PublishExportJob(ctx, job); err != nil {
		uc.l.Errorf(ctx, "export.usecase.EnqueueEmailExport: publish job failed: %v", err)
		return export.EnqueueOutput{}, err
	}

	uc.l.Infof(ctx, "export.usecase.EnqueueEmailExport: queued job %s (%d stories) for %s", job.ID, total, input.Email)
	return export.EnqueueOutput{JobID: job.ID}, nil
}

// RunEmailExport executes one queued job to completion. All queries are
// fetched into memory first; the archive is assembled and mailed only after
// every fetch succeeded. On any failure the fetched data is discarded and
// no email of any kind goes out.
func (uc *implUseCase) RunEmailExport(ctx context.Context, job model.ExportJob) error {
	if len(job.Queries) == 0 {
		return export.ErrNoQueries
	}
	sc := model.Scope{UserID: job.UserID, Email: job.Email, IsStaff: job.IsStaff}

	job.State = model.ExportStateFetching
	uc.l.Infof(ctx, "export.usecase.RunEmailExport: job %s fetching %d queries", job.ID, len(job.Queries))

	fetched := make([][]providers.Story, len(job.Queries))
	for i, q := range job.Queries {
		err := uc.forEachPage(ctx, sc, q, func(page []providers.Story) error {
			fetched[i] = append(fetched[i], page...)
			return nil
		})
		if err != nil {
			job.State = model.ExportStateFailed
			uc.l.Errorf(ctx, "export.usecase.RunEmailExport: job %s fetch failed: %v", job.ID, err)
			return err
		}
	}

	job.State = model.ExportStateAssembling
	timestamp := export.JobTimestamp(uc.now())

	var buf bytes.Buffer
	archive := export.NewArchiveBuilder(&buf, timestamp, job.Kind)
	for i, q := range job.Queries {
		table, _, err := archive.NextEntry(q.ProviderName)
		if err != nil {
			job.State = model.ExportStateFailed
			return err
		}
		for _, story := range fetched[i] {
			if err := table.WriteStory(story); err != nil {
				job.State = model.ExportStateFailed
				return err
			}
		}
		if err := table.Flush(); err != nil {
			job.State = model.ExportStateFailed
			return err
		}
	}
	if err := archive.Close(); err != nil {
		job.State = model.ExportStateFailed
		return err
	}

	job.State = model.ExportStateDelivering
	attachment := export.ArchiveFilename(timestamp, job.Kind)
	err := uc.sender.Send(ctx, email.Email{
		Recipient: job.Email,
		Subject:   "Your search export is ready",
		Body:      fmt.Sprintf("Attached: %s, the results of %d queries.", attachment, len(job.Queries)),
		Attachments: []email.Attachment{{
			Filename:    attachment,
			ContentType: "application/zip",
			Data:        buf.Bytes(),
		}},
	})
	if err != nil {
		job.State = model.ExportStateFailed
		uc.l.Errorf(ctx, "export.usecase.RunEmailExport: job %s delivery failed: %v", job.ID, err)
		return err
	}

	job.State = model.ExportStateDone
	uc.l.Infof(ctx, "export.usecase.RunEmailExport: job %s delivered to %s", job.ID, job.Email)
	return nil
}
