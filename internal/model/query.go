package model

import "time"

// QueryDescriptor is an immutable description of a single content query.
// It is built once by the delivery layer when a request is parsed and then
// passed through the pipeline by value; nothing downstream mutates it.
type QueryDescriptor struct {
	ProviderName    string
	QueryText       string
	StartDate       time.Time
	EndDate         time.Time
	ProviderOptions map[string]any
	APIKey          string
	BaseURL         string
	CachingEnabled  bool
}

// WithQueryText returns a copy of the descriptor with a different query
// text. Used for derived queries such as the everything-query baseline.
func (q QueryDescriptor) WithQueryText(text string) QueryDescriptor {
	q.QueryText = text
	return q
}

// Options returns a copy of the provider options map so callers cannot
// mutate the descriptor through it.
func (q QueryDescriptor) Options() map[string]any {
	if q.ProviderOptions == nil {
		return nil
	}
	opts := make(map[string]any, len(q.ProviderOptions))
	for k, v := range q.ProviderOptions {
		opts[k] = v
	}
	return opts
}
