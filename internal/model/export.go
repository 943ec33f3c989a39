package model

// ExportState tracks an export job through its lifecycle.
type ExportState string

const (
	ExportStatePending    ExportState = "pending"
	ExportStateFetching   ExportState = "fetching"
	ExportStateAssembling ExportState = "assembling"
	ExportStateDelivering ExportState = "delivering"
	ExportStateDone       ExportState = "done"
	ExportStateFailed     ExportState = "failed"
)

// ExportKind labels the content of an export for file naming.
type ExportKind string

const (
	ExportKindContent   ExportKind = "content"
	ExportKindSources   ExportKind = "sources"
	ExportKindLanguages ExportKind = "languages"
	ExportKindWords     ExportKind = "words"
	ExportKindCounts    ExportKind = "counts"
)

// ExportJob is one export request: one or more queries whose matching
// records are assembled into CSV form and delivered either as a live
// download or as a zipped email attachment.
type ExportJob struct {
	ID      string
	UserID  string
	IsStaff bool
	Email   string
	Kind    ExportKind
	Queries []QueryDescriptor
	State   ExportState
}
