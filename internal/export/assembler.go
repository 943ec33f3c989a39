package export

import (
	"archive/zip"
	"encoding/csv"
	"io"

	"mediasearch-srv/internal/model"
	"mediasearch-srv/pkg/providers"
)

// TableWriter writes one CSV table. The column policy is derived from the
// first story and the header emitted exactly once, before the first row.
type TableWriter struct {
	w      *csv.Writer
	policy *ColumnPolicy
}

// NewTableWriter wraps w in a CSV table writer.
func NewTableWriter(w io.Writer) *TableWriter {
	return &TableWriter{w: csv.NewWriter(w)}
}

// WriteStory appends one row, writing the header first if this is the first
// story of the table.
func (t *TableWriter) WriteStory(story providers.Story) error {
	if t.policy == nil {
		t.policy = NewColumnPolicy(story)
		if err := t.w.Write(t.policy.Header()); err != nil {
			return err
		}
	}
	return t.w.Write(t.policy.Project(story))
}

// Flush pushes buffered rows to the underlying writer.
func (t *TableWriter) Flush() error {
	t.w.Flush()
	return t.w.Error()
}

// ArchiveBuilder assembles the multi-query ZIP: one deflate-compressed CSV
// entry per query, named with the job's shared timestamp and the 1-based
// query sequence.
type ArchiveBuilder struct {
	zw        *zip.Writer
	timestamp string
	kind      model.ExportKind
	seq       int
}

// NewArchiveBuilder starts an archive on w.
func NewArchiveBuilder(w io.Writer, timestamp string, kind model.ExportKind) *ArchiveBuilder {
	return &ArchiveBuilder{zw: zip.NewWriter(w), timestamp: timestamp, kind: kind}
}

// NextEntry opens the CSV entry for the next query. The name is bound to
// the provider passed for this entry, never to state left over from a
// previous iteration.
func (a *ArchiveBuilder) NextEntry(provider string) (*TableWriter, string, error) {
	a.seq++
	name := EntryFilename(a.seq, provider, a.timestamp, a.kind)
	w, err := a.zw.Create(name)
	if err != nil {
		return nil, "", err
	}
	return NewTableWriter(w), name, nil
}

// Close finalizes the archive central directory.
func (a *ArchiveBuilder) Close() error {
	return a.zw.Close()
}
