package model

import "time"

// QuotaChargeEvent records one unit of metered provider usage. Exactly one
// event is emitted per provider page pulled; single-shot calls count as one
// page with the operation's weight.
type QuotaChargeEvent struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	IsStaff   bool      `json:"is_staff"`
	Provider  string    `json:"provider"`
	Operation string    `json:"operation"`
	Weight    int64     `json:"weight"`
	ChargedAt time.Time `json:"charged_at"`
}

// QuotaUsage is the current consumption within one admission window.
type QuotaUsage struct {
	UserID   string
	Provider string
	Window   string
	Used     int64
	Limit    int64
}
