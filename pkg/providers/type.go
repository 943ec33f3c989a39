package providers

import "time"

// Provider names accepted by the registry.
const (
	ProviderOnlineNewsMediaCloud = "onlinenews-mediacloud"
	ProviderOnlineNewsWayback    = "onlinenews-waybackmachine"
	ProviderRedditPushshift      = "reddit-pushshift"
)

// DefaultPageSize is the number of stories requested per provider page.
const DefaultPageSize = 1000

// Story is one matching record. Field sets differ between providers, so
// stories stay schemaless until the export layer projects them onto a
// column policy.
type Story map[string]any

// DateCount is the number of matching stories on one day.
type DateCount struct {
	Date  time.Time `json:"date"`
	Count int64     `json:"count"`
}

// NormalizedDateCount adds the day's total volume and the resulting ratio.
type NormalizedDateCount struct {
	Date       time.Time `json:"date"`
	Count      int64     `json:"count"`
	TotalCount int64     `json:"total_count"`
	Ratio      float64   `json:"ratio"`
}

// CountOverTimeResult is a normalized count-over-time series. Normalized is
// false when the backend could only produce plain counts.
type CountOverTimeResult struct {
	Counts     []NormalizedDateCount `json:"counts"`
	Total      int64                 `json:"total"`
	Normalized bool                  `json:"normalized"`
}

// Term is one aggregation bucket (source domain, language code, word).
type Term struct {
	Name  string  `json:"name"`
	Count int64   `json:"count"`
	Ratio float64 `json:"ratio,omitempty"`
}

// Config holds registry-level provider settings. Per-query API key and base
// URL overrides on the QueryDescriptor take precedence.
type Config struct {
	BaseURLs map[string]string
	APIKeys  map[string]string
	Timeout  time.Duration
	CacheTTL time.Duration
}
