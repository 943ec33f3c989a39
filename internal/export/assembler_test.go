package export

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"mediasearch-srv/internal/model"
	"mediasearch-srv/pkg/providers"
)

func TestTableWriterHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableWriter(&buf)

	stories := []providers.Story{
		{"id": "1", "title": "one"},
		{"id": "2", "title": "two"},
		{"id": "3"},
	}
	for _, s := range stories {
		if err := table.WriteStory(s); err != nil {
			t.Fatalf("WriteStory: %v", err)
		}
	}
	if err := table.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("got %d records, want header + 3 rows", len(records))
	}
	if strings.Join(records[0], ",") != "id,title" {
		t.Errorf("header = %v", records[0])
	}
	if records[3][1] != "" {
		t.Errorf("missing field should render empty, got %q", records[3][1])
	}
}

func TestArchiveBuilderEntryNames(t *testing.T) {
	var buf bytes.Buffer
	archive := NewArchiveBuilder(&buf, "20240305143009", model.ExportKindContent)

	providersInOrder := []string{"onlinenews-mediacloud", "reddit-pushshift"}
	for _, prov := range providersInOrder {
		table, name, err := archive.NextEntry(prov)
		if err != nil {
			t.Fatalf("NextEntry: %v", err)
		}
		if !strings.Contains(name, prov) {
			t.Errorf("entry %q not bound to provider %q", name, prov)
		}
		if err := table.WriteStory(providers.Story{"id": "1"}); err != nil {
			t.Fatalf("WriteStory: %v", err)
		}
		if err := table.Flush(); err != nil {
			t.Fatalf("Flush: %v", err)
		}
	}
	if err := archive.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("got %d entries, want 2", len(zr.File))
	}

	wantNames := []string{
		"mc-001-onlinenews-mediacloud-20240305143009-content.csv",
		"mc-002-reddit-pushshift-20240305143009-content.csv",
	}
	for i, f := range zr.File {
		if f.Name != wantNames[i] {
			t.Errorf("entry %d = %q, want %q", i, f.Name, wantNames[i])
		}
	}
}

func TestFilenames(t *testing.T) {
	ts := "20240305143009"

	if got := ArchiveFilename(ts, model.ExportKindContent); got != "mc-20240305143009-content.zip" {
		t.Errorf("ArchiveFilename = %q", got)
	}
	if got := QuickFilename("reddit-pushshift", ts, model.ExportKindSources); got != "mc-reddit-pushshift-20240305143009-sources.csv" {
		t.Errorf("QuickFilename = %q", got)
	}
	if got := EntryFilename(7, "onlinenews-waybackmachine", ts, model.ExportKindContent); got != "mc-007-onlinenews-waybackmachine-20240305143009-content.csv" {
		t.Errorf("EntryFilename = %q", got)
	}
}
