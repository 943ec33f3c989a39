package model

// Roles carried in access tokens.
const (
	RoleStaff = "staff"
	RoleUser  = "user"
)

// Scope is the per-request identity attached to the context by the auth
// middleware. Staff users bypass quota admission but their usage is still
// recorded.
type Scope struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	IsStaff bool   `json:"is_staff"`
}
