package rabbitmq

import (
	"mediasearch-srv/internal/model"
	"mediasearch-srv/pkg/util"
)

// QueryMessage is the wire form of one query descriptor.
type QueryMessage struct {
	Provider       string         `json:"provider"`
	Query          string         `json:"query"`
	Start          string         `json:"start"`
	End            string         `json:"end"`
	Options        map[string]any `json:"options,omitempty"`
	APIKey         string         `json:"api_key,omitempty"`
	BaseURL        string         `json:"base_url,omitempty"`
	CachingEnabled bool           `json:"caching_enabled,omitempty"`
}

// ExportJobMessage is the queue message for one email export job.
type ExportJobMessage struct {
	ID      string         `json:"id"`
	UserID  string         `json:"user_id"`
	IsStaff bool           `json:"is_staff"`
	Email   string         `json:"email"`
	Kind    string         `json:"kind"`
	Queries []QueryMessage `json:"queries"`
}

func toQueryMessage(q model.QueryDescriptor) QueryMessage {
	return QueryMessage{
		Provider:       q.ProviderName,
		Query:          q.QueryText,
		Start:          util.DateToStr(q.StartDate),
		End:            util.DateToStr(q.EndDate),
		Options:        q.ProviderOptions,
		APIKey:         q.APIKey,
		BaseURL:        q.BaseURL,
		CachingEnabled: q.CachingEnabled,
	}
}

// ToJobMessage converts a job to its wire form.
func ToJobMessage(job model.ExportJob) ExportJobMessage {
	msg := ExportJobMessage{
		ID:      job.ID,
		UserID:  job.UserID,
		IsStaff: job.IsStaff,
		Email:   job.Email,
		Kind:    string(job.Kind),
		Queries: make([]QueryMessage, 0, len(job.Queries)),
	}
	for _, q := range job.Queries {
		msg.Queries = append(msg.Queries, toQueryMessage(q))
	}
	return msg
}

// ToJob converts a wire message back to the domain job.
func (m ExportJobMessage) ToJob() (model.ExportJob, error) {
	job := model.ExportJob{
		ID:      m.ID,
		UserID:  m.UserID,
		IsStaff: m.IsStaff,
		Email:   m.Email,
		Kind:    model.ExportKind(m.Kind),
		State:   model.ExportStatePending,
		Queries: make([]model.QueryDescriptor, 0, len(m.Queries)),
	}
	for _, q := range m.Queries {
		start, err := util.ParseFlexibleDate(q.Start)
		if err != nil {
			return model.ExportJob{}, err
		}
		end, err := util.ParseFlexibleDate(q.End)
		if err != nil {
			return model.ExportJob{}, err
		}
		job.Queries = append(job.Queries, model.QueryDescriptor{
			ProviderName:    q.Provider,
			QueryText:       q.Query,
			StartDate:       start,
			EndDate:         end,
			ProviderOptions: q.Options,
			APIKey:          q.APIKey,
			BaseURL:         q.BaseURL,
			CachingEnabled:  q.CachingEnabled,
		})
	}
	return job, nil
}
