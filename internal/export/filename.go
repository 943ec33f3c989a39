package export

import (
	"fmt"
	"time"

	"mediasearch-srv/internal/model"
	"mediasearch-srv/pkg/util"
)

// JobTimestamp is the shared local timestamp for all names within one job.
func JobTimestamp(t time.Time) string {
	return util.FilenameTimestamp(t)
}

// EntryFilename names one CSV inside a multi-query archive. The sequence is
// the 1-based position of the query whose rows the file holds.
func EntryFilename(seq int, provider, timestamp string, kind model.ExportKind) string {
	return fmt.Sprintf("mc-%03d-%s-%s-%s.csv", seq, provider, timestamp, kind)
}

// ArchiveFilename names the ZIP container of a job.
func ArchiveFilename(timestamp string, kind model.ExportKind) string {
	return fmt.Sprintf("mc-%s-%s.zip", timestamp, kind)
}

// TableFilename names the combined single-table CSV of a job.
func TableFilename(timestamp string, kind model.ExportKind) string {
	return fmt.Sprintf("mc-%s-%s.csv", timestamp, kind)
}

// QuickFilename names a single-query quick-view CSV download.
func QuickFilename(provider, timestamp string, kind model.ExportKind) string {
	return fmt.Sprintf("mc-%s-%s-%s.csv", provider, timestamp, kind)
}
