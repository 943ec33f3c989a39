package http

import (
	"time"

	"mediasearch-srv/internal/model"
	"mediasearch-srv/internal/quota"
	"mediasearch-srv/pkg/paginator"
)

type usageResp struct {
	Provider string `json:"provider"`
	Window   string `json:"window"`
	Used     int64  `json:"used"`
	Limit    int64  `json:"limit"`
}

func newUsageResp(u model.QuotaUsage) usageResp {
	return usageResp{
		Provider: u.Provider,
		Window:   u.Window,
		Used:     u.Used,
		Limit:    u.Limit,
	}
}

type chargeEventResp struct {
	ID        string `json:"id"`
	Provider  string `json:"provider"`
	Operation string `json:"operation"`
	Weight    int64  `json:"weight"`
	ChargedAt string `json:"charged_at"`
}

type historyResp struct {
	Events    []chargeEventResp           `json:"events"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newHistoryResp(out quota.HistoryOutput) historyResp {
	resp := historyResp{
		Events:    make([]chargeEventResp, len(out.Events)),
		Paginator: out.Paginator.ToResponse(),
	}
	for i, e := range out.Events {
		resp.Events[i] = chargeEventResp{
			ID:        e.ID,
			Provider:  e.Provider,
			Operation: e.Operation,
			Weight:    e.Weight,
			ChargedAt: e.ChargedAt.Format(time.RFC3339),
		}
	}
	return resp
}
