package export

import (
	"fmt"
	"sort"
	"time"

	"mediasearch-srv/pkg/providers"
)

// ColumnPolicy fixes the column set of one CSV table. The header comes from
// the first story seen; every later story is projected onto it: missing
// fields render empty, unknown fields are dropped. Provider schema drift
// within a job therefore never corrupts the table shape.
type ColumnPolicy struct {
	header []string
}

// NewColumnPolicy derives the header from a story's field names, sorted
// lexicographically.
func NewColumnPolicy(first providers.Story) *ColumnPolicy {
	header := make([]string, 0, len(first))
	for field := range first {
		header = append(header, field)
	}
	sort.Strings(header)
	return &ColumnPolicy{header: header}
}

// Header returns the column names in output order.
func (p *ColumnPolicy) Header() []string {
	return p.header
}

// Project renders one story as a row under this policy.
func (p *ColumnPolicy) Project(story providers.Story) []string {
	row := make([]string, len(p.header))
	for i, field := range p.header {
		value, ok := story[field]
		if !ok || value == nil {
			continue
		}
		row[i] = renderValue(value)
	}
	return row
}

func renderValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return t.Format(time.RFC3339)
	case float64:
		// JSON numbers decode as float64; keep integers readable.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
