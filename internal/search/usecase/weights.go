package usecase

// Operation names as they appear on quota charge events.
const (
	opCount         = "count"
	opCountOverTime = "counts-over-time"
	opSample        = "sample"
	opItem          = "item"
	opStoryList     = "story-list"
	opSources       = "sources"
	opLanguages     = "languages"
	opWords         = "words"
)

// weightFor prices one single-shot operation. Aggregations over story
// content cost more than plain counts.
func weightFor(operation string) int64 {
	switch operation {
	case opLanguages:
		return 2
	case opSources, opWords:
		return 4
	default:
		return 1
	}
}
