package savedsearch

import (
	"encoding/json"

	"mediasearch-srv/internal/model"
	"mediasearch-srv/pkg/util"
)

// serializedQuery is one query as stored inside a saved search.
type serializedQuery struct {
	Provider       string         `json:"provider"`
	Query          string         `json:"query"`
	Start          string         `json:"start"`
	End            string         `json:"end"`
	Options        map[string]any `json:"options,omitempty"`
	APIKey         string         `json:"api_key,omitempty"`
	BaseURL        string         `json:"base_url,omitempty"`
	CachingEnabled bool           `json:"caching_enabled,omitempty"`
}

// ParseQueries re-parses stored query state into descriptors. Dates accept
// both supported input formats.
func ParseQueries(serialized string) ([]model.QueryDescriptor, error) {
	var stored []serializedQuery
	if err := json.Unmarshal([]byte(serialized), &stored); err != nil {
		return nil, ErrInvalidSerialized
	}

	queries := make([]model.QueryDescriptor, 0, len(stored))
	for _, s := range stored {
		start, err := util.ParseFlexibleDate(s.Start)
		if err != nil {
			return nil, ErrInvalidSerialized
		}
		end, err := util.ParseFlexibleDate(s.End)
		if err != nil {
			return nil, ErrInvalidSerialized
		}
		queries = append(queries, model.QueryDescriptor{
			ProviderName:    s.Provider,
			QueryText:       s.Query,
			StartDate:       start,
			EndDate:         end,
			ProviderOptions: s.Options,
			APIKey:          s.APIKey,
			BaseURL:         s.BaseURL,
			CachingEnabled:  s.CachingEnabled,
		})
	}
	return queries, nil
}
