package usecase

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"mediasearch-srv/internal/export"
	"mediasearch-srv/internal/model"
	"mediasearch-srv/internal/quota"
	"mediasearch-srv/pkg/email"
	"mediasearch-srv/pkg/log"
	"mediasearch-srv/pkg/paginator"
	"mediasearch-srv/pkg/providers"
)

// fakeProvider serves canned pages and can fail at a chosen page index.
type fakeProvider struct {
	name       string
	pages      [][]providers.Story
	failAtPage int // 0 = never
	count      int64
	countErr   error
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Count(context.Context, model.QueryDescriptor) (int64, error) {
	return f.count, f.countErr
}

func (f *fakeProvider) CountOverTime(context.Context, model.QueryDescriptor) ([]providers.DateCount, error) {
	return nil, providers.ErrUnsupportedOperation
}

func (f *fakeProvider) NormalizedCountOverTime(context.Context, model.QueryDescriptor) (providers.CountOverTimeResult, error) {
	return providers.CountOverTimeResult{}, providers.ErrUnsupportedOperation
}

func (f *fakeProvider) Sources(context.Context, model.QueryDescriptor, int) ([]providers.Term, error) {
	return nil, providers.ErrUnsupportedOperation
}

func (f *fakeProvider) Languages(context.Context, model.QueryDescriptor, int) ([]providers.Term, error) {
	return nil, providers.ErrUnsupportedOperation
}

func (f *fakeProvider) Words(context.Context, model.QueryDescriptor, int) ([]providers.Term, error) {
	return nil, providers.ErrUnsupportedOperation
}

func (f *fakeProvider) Sample(context.Context, model.QueryDescriptor, int) ([]providers.Story, error) {
	return nil, providers.ErrUnsupportedOperation
}

func (f *fakeProvider) Item(context.Context, model.QueryDescriptor, string) (providers.Story, error) {
	return nil, providers.ErrUnsupportedOperation
}

func (f *fakeProvider) PagedItems(context.Context, model.QueryDescriptor, string) ([]providers.Story, string, error) {
	return nil, "", providers.ErrUnsupportedOperation
}

func (f *fakeProvider) AllItems(context.Context, model.QueryDescriptor) providers.StoryIterator {
	return &fakeIterator{pages: f.pages, failAtPage: f.failAtPage}
}

type fakeIterator struct {
	pages      [][]providers.Story
	failAtPage int
	pos        int
	err        error
}

func (it *fakeIterator) Next(ctx context.Context) bool {
	if it.err != nil {
		return false
	}
	if err := ctx.Err(); err != nil {
		it.err = err
		return false
	}
	if it.failAtPage > 0 && it.pos+1 == it.failAtPage {
		it.err = errors.New("provider exploded")
		return false
	}
	if it.pos >= len(it.pages) {
		return false
	}
	it.pos++
	return true
}

func (it *fakeIterator) Page() []providers.Story { return it.pages[it.pos-1] }
func (it *fakeIterator) Err() error              { return it.err }

type fakeResolver struct {
	providers map[string]providers.ContentProvider
}

func (f *fakeResolver) Resolve(q model.QueryDescriptor) (providers.ContentProvider, error) {
	p, ok := f.providers[q.ProviderName]
	if !ok {
		return nil, providers.ErrProviderNotFound
	}
	return p, nil
}

// fakeQuota records charges and can deny admission.
type fakeQuota struct {
	charges  []string
	admitErr error
}

func (f *fakeQuota) Charge(_ context.Context, _ model.Scope, provider, operation string, weight int64) error {
	f.charges = append(f.charges, fmt.Sprintf("%s:%s:%d", provider, operation, weight))
	return nil
}

func (f *fakeQuota) CheckAdmission(context.Context, model.Scope, string) error {
	return f.admitErr
}

func (f *fakeQuota) Usage(context.Context, model.Scope, string) (model.QuotaUsage, error) {
	return model.QuotaUsage{}, nil
}

func (f *fakeQuota) RecordHistory(context.Context, model.QuotaChargeEvent) error { return nil }

func (f *fakeQuota) History(context.Context, model.Scope, paginator.PaginateQuery) (quota.HistoryOutput, error) {
	return quota.HistoryOutput{}, nil
}

type fakeJobProducer struct {
	jobs []model.ExportJob
	err  error
}

func (f *fakeJobProducer) PublishExportJob(_ context.Context, job model.ExportJob) error {
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, job)
	return nil
}

type fakeSender struct {
	sent []email.Email
	err  error
}

func (f *fakeSender) Send(_ context.Context, e email.Email) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, e)
	return nil
}

func testUC(resolver *fakeResolver, q *fakeQuota, prod *fakeJobProducer, sender *fakeSender, cfg Config) export.UseCase {
	l := log.Init(log.ZapConfig{Level: "error", Mode: "debug"})
	return New(resolver, q, prod, sender, l, cfg)
}

func q(provider string) model.QueryDescriptor {
	return model.QueryDescriptor{
		ProviderName: provider,
		QueryText:    "test",
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		EndDate:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.Local),
	}
}

func TestStreamAllContentSingleHeaderAcrossQueries(t *testing.T) {
	resolver := &fakeResolver{providers: map[string]providers.ContentProvider{
		"onlinenews-mediacloud": &fakeProvider{
			name: "onlinenews-mediacloud",
			pages: [][]providers.Story{
				{{"id": "n1", "title": "a", "url": "u1"}},
				{{"id": "n2", "title": "b", "url": "u2"}},
			},
		},
		"reddit-pushshift": &fakeProvider{
			name: "reddit-pushshift",
			pages: [][]providers.Story{
				// Different schema: subreddit is dropped, url missing.
				{{"id": "r1", "title": "c", "subreddit": "news"}},
			},
		},
	}}
	quotaUC := &fakeQuota{}
	uc := testUC(resolver, quotaUC, &fakeJobProducer{}, &fakeSender{}, Config{})

	var buf bytes.Buffer
	input := export.ContentExportInput{Queries: []model.QueryDescriptor{
		q("onlinenews-mediacloud"), q("reddit-pushshift"),
	}}
	if err := uc.StreamAllContent(context.Background(), model.Scope{UserID: "u1"}, input, &buf); err != nil {
		t.Fatalf("StreamAllContent: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	// Header from the first story of the first page of the first query.
	if strings.Join(records[0], ",") != "id,title,url" {
		t.Errorf("header = %v", records[0])
	}
	if len(records) != 4 {
		t.Fatalf("got %d records, want header + 3 rows", len(records))
	}
	// Reddit row projected onto the news header: url empty.
	last := records[3]
	if last[0] != "r1" || last[2] != "" {
		t.Errorf("projected reddit row = %v", last)
	}

	// One charge per page pulled: 2 news pages + 1 reddit page.
	if len(quotaUC.charges) != 3 {
		t.Errorf("charges = %v, want 3 page charges", quotaUC.charges)
	}
}

func TestStreamAllContentTruncatesOnMidStreamFailure(t *testing.T) {
	resolver := &fakeResolver{providers: map[string]providers.ContentProvider{
		"onlinenews-mediacloud": &fakeProvider{
			name: "onlinenews-mediacloud",
			pages: [][]providers.Story{
				{{"id": "1", "title": "ok"}},
				{{"id": "2", "title": "never seen"}},
			},
			failAtPage: 2,
		},
	}}
	quotaUC := &fakeQuota{}
	uc := testUC(resolver, quotaUC, &fakeJobProducer{}, &fakeSender{}, Config{})

	var buf bytes.Buffer
	input := export.ContentExportInput{Queries: []model.QueryDescriptor{q("onlinenews-mediacloud")}}
	err := uc.StreamAllContent(context.Background(), model.Scope{UserID: "u1"}, input, &buf)
	if err == nil {
		t.Fatal("expected mid-stream error")
	}

	// The rows fetched before the failure were already flushed.
	records, readErr := csv.NewReader(&buf).ReadAll()
	if readErr != nil {
		t.Fatalf("read back: %v", readErr)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want header + 1 row before truncation", len(records))
	}
	// Only the successfully pulled page was charged.
	if len(quotaUC.charges) != 1 {
		t.Errorf("charges = %v, want 1", quotaUC.charges)
	}
}

func TestStreamAllContentDeniedBeforeAnyFetch(t *testing.T) {
	resolver := &fakeResolver{providers: map[string]providers.ContentProvider{
		"onlinenews-mediacloud": &fakeProvider{
			name:  "onlinenews-mediacloud",
			pages: [][]providers.Story{{{"id": "1"}}},
		},
	}}
	quotaUC := &fakeQuota{admitErr: errors.New("over quota")}
	uc := testUC(resolver, quotaUC, &fakeJobProducer{}, &fakeSender{}, Config{})

	var buf bytes.Buffer
	input := export.ContentExportInput{Queries: []model.QueryDescriptor{q("onlinenews-mediacloud")}}
	if err := uc.StreamAllContent(context.Background(), model.Scope{UserID: "u1"}, input, &buf); err == nil {
		t.Fatal("expected admission error")
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written when admission fails")
	}
	if len(quotaUC.charges) != 0 {
		t.Error("nothing should be charged when admission fails")
	}
}

func TestStreamQuerySetZipEntryPerQuery(t *testing.T) {
	resolver := &fakeResolver{providers: map[string]providers.ContentProvider{
		"onlinenews-mediacloud": &fakeProvider{
			name:  "onlinenews-mediacloud",
			pages: [][]providers.Story{{{"id": "n1", "title": "a"}}},
		},
		"reddit-pushshift": &fakeProvider{
			name:  "reddit-pushshift",
			pages: [][]providers.Story{{{"id": "r1", "subreddit": "news"}}},
		},
	}}
	uc := testUC(resolver, &fakeQuota{}, &fakeJobProducer{}, &fakeSender{}, Config{})

	var buf bytes.Buffer
	input := export.ContentExportInput{Queries: []model.QueryDescriptor{
		q("onlinenews-mediacloud"), q("reddit-pushshift"),
	}}
	if err := uc.StreamQuerySetZip(context.Background(), model.Scope{UserID: "u1"}, input, &buf); err != nil {
		t.Fatalf("StreamQuerySetZip: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("got %d entries, want 2", len(zr.File))
	}
	if !strings.Contains(zr.File[0].Name, "mc-001-onlinenews-mediacloud-") {
		t.Errorf("first entry = %q", zr.File[0].Name)
	}
	if !strings.Contains(zr.File[1].Name, "mc-002-reddit-pushshift-") {
		t.Errorf("second entry = %q", zr.File[1].Name)
	}
	// Shared timestamp across entries.
	ts0 := strings.Split(zr.File[0].Name, "-")
	ts1 := strings.Split(zr.File[1].Name, "-")
	if ts0[len(ts0)-2] != ts1[len(ts1)-2] {
		t.Errorf("timestamps differ: %q vs %q", zr.File[0].Name, zr.File[1].Name)
	}
}

func TestStreamQuerySetZipFirstFetchFailureWritesNothing(t *testing.T) {
	resolver := &fakeResolver{providers: map[string]providers.ContentProvider{
		"onlinenews-mediacloud": &fakeProvider{
			name:       "onlinenews-mediacloud",
			pages:      [][]providers.Story{{{"id": "1"}}},
			failAtPage: 1,
		},
	}}
	uc := testUC(resolver, &fakeQuota{}, &fakeJobProducer{}, &fakeSender{}, Config{})

	var buf bytes.Buffer
	input := export.ContentExportInput{Queries: []model.QueryDescriptor{q("onlinenews-mediacloud")}}
	if err := uc.StreamQuerySetZip(context.Background(), model.Scope{UserID: "u1"}, input, &buf); err == nil {
		t.Fatal("expected fetch failure")
	}
	// No ZIP bytes reached the writer, so the delivery layer can still
	// answer with an error body instead of a truncated archive.
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes before failing, want 0", buf.Len())
	}
}

func TestStreamQuerySetZipEmptyQueryStillGetsEntry(t *testing.T) {
	resolver := &fakeResolver{providers: map[string]providers.ContentProvider{
		"onlinenews-mediacloud": &fakeProvider{
			name:  "onlinenews-mediacloud",
			pages: [][]providers.Story{{{"id": "n1", "title": "a"}}},
		},
		"reddit-pushshift": &fakeProvider{
			name: "reddit-pushshift",
		},
	}}
	uc := testUC(resolver, &fakeQuota{}, &fakeJobProducer{}, &fakeSender{}, Config{})

	var buf bytes.Buffer
	input := export.ContentExportInput{Queries: []model.QueryDescriptor{
		q("onlinenews-mediacloud"), q("reddit-pushshift"),
	}}
	if err := uc.StreamQuerySetZip(context.Background(), model.Scope{UserID: "u1"}, input, &buf); err != nil {
		t.Fatalf("StreamQuerySetZip: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("got %d entries, want one per query", len(zr.File))
	}
	if !strings.Contains(zr.File[1].Name, "reddit-pushshift") {
		t.Errorf("second entry = %q", zr.File[1].Name)
	}
}

func TestEnqueueEmailExportBounds(t *testing.T) {
	cases := []struct {
		name    string
		count   int64
		wantErr error
	}{
		{name: "too small", count: 100, wantErr: export.ErrTooFewStories},
		{name: "too large", count: 300000, wantErr: export.ErrTooManyStories},
		{name: "in range", count: 50000, wantErr: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolver := &fakeResolver{providers: map[string]providers.ContentProvider{
				"onlinenews-mediacloud": &fakeProvider{name: "onlinenews-mediacloud", count: tc.count},
			}}
			prod := &fakeJobProducer{}
			uc := testUC(resolver, &fakeQuota{}, prod, &fakeSender{}, Config{
				MinEmailStories: 25000,
				MaxEmailStories: 200000,
			})

			input := export.EmailExportInput{
				Queries: []model.QueryDescriptor{q("onlinenews-mediacloud")},
				Email:   "user@example.org",
			}
			out, err := uc.EnqueueEmailExport(context.Background(), model.Scope{UserID: "u1"}, input)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				if len(prod.jobs) != 0 {
					t.Error("no job should be queued")
				}
				return
			}
			if err != nil {
				t.Fatalf("EnqueueEmailExport: %v", err)
			}
			if out.JobID == "" || len(prod.jobs) != 1 {
				t.Errorf("job not queued: out=%+v jobs=%d", out, len(prod.jobs))
			}
		})
	}
}

func TestRunEmailExportDeliversZip(t *testing.T) {
	resolver := &fakeResolver{providers: map[string]providers.ContentProvider{
		"onlinenews-mediacloud": &fakeProvider{
			name:  "onlinenews-mediacloud",
			pages: [][]providers.Story{{{"id": "1", "title": "a"}}, {{"id": "2", "title": "b"}}},
		},
	}}
	sender := &fakeSender{}
	uc := testUC(resolver, &fakeQuota{}, &fakeJobProducer{}, sender, Config{})

	job := model.ExportJob{
		ID:      "job1",
		UserID:  "u1",
		Email:   "user@example.org",
		Kind:    model.ExportKindContent,
		Queries: []model.QueryDescriptor{q("onlinenews-mediacloud")},
	}
	if err := uc.RunEmailExport(context.Background(), job); err != nil {
		t.Fatalf("RunEmailExport: %v", err)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(sender.sent))
	}
	msg := sender.sent[0]
	if msg.Recipient != "user@example.org" || len(msg.Attachments) != 1 {
		t.Fatalf("unexpected email: %+v", msg)
	}
	att := msg.Attachments[0]
	if !strings.HasPrefix(att.Filename, "mc-") || !strings.HasSuffix(att.Filename, "-content.zip") {
		t.Errorf("attachment name = %q", att.Filename)
	}

	zr, err := zip.NewReader(bytes.NewReader(att.Data), int64(len(att.Data)))
	if err != nil {
		t.Fatalf("attachment is not a zip: %v", err)
	}
	if len(zr.File) != 1 {
		t.Errorf("got %d entries, want 1", len(zr.File))
	}
}

func TestRunEmailExportFailureSendsNothing(t *testing.T) {
	resolver := &fakeResolver{providers: map[string]providers.ContentProvider{
		"onlinenews-mediacloud": &fakeProvider{
			name:  "onlinenews-mediacloud",
			pages: [][]providers.Story{{{"id": "1"}}},
		},
		"reddit-pushshift": &fakeProvider{
			name:       "reddit-pushshift",
			pages:      [][]providers.Story{{{"id": "r1"}}},
			failAtPage: 1,
		},
	}}
	sender := &fakeSender{}
	uc := testUC(resolver, &fakeQuota{}, &fakeJobProducer{}, sender, Config{})

	job := model.ExportJob{
		ID:     "job2",
		UserID: "u1",
		Email:  "user@example.org",
		Kind:   model.ExportKindContent,
		Queries: []model.QueryDescriptor{
			q("onlinenews-mediacloud"), q("reddit-pushshift"),
		},
	}
	if err := uc.RunEmailExport(context.Background(), job); err == nil {
		t.Fatal("expected fetch failure")
	}
	if len(sender.sent) != 0 {
		t.Error("no email of any kind goes out on failure")
	}
}

func TestStreamAllContentCooperativeCancel(t *testing.T) {
	resolver := &fakeResolver{providers: map[string]providers.ContentProvider{
		"onlinenews-mediacloud": &fakeProvider{
			name:  "onlinenews-mediacloud",
			pages: [][]providers.Story{{{"id": "1"}}, {{"id": "2"}}, {{"id": "3"}}},
		},
	}}
	quotaUC := &fakeQuota{}
	uc := testUC(resolver, quotaUC, &fakeJobProducer{}, &fakeSender{}, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	input := export.ContentExportInput{Queries: []model.QueryDescriptor{q("onlinenews-mediacloud")}}
	err := uc.StreamAllContent(ctx, model.Scope{UserID: "u1"}, input, &buf)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(quotaUC.charges) != 0 {
		t.Errorf("charges = %v, want none after immediate cancel", quotaUC.charges)
	}
}
