package scope

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"mediasearch-srv/internal/model"
)

// Payload is the verified identity extracted from an access token.
type Payload struct {
	UserID    string
	Email     string
	Role      string
	Subject   string
	ExpiresAt int64
	IssuedAt  int64
	Id        string
	Issuer    string
}

// Manager verifies access tokens into payloads.
type Manager interface {
	Verify(token string) (Payload, error)
}

// NewScope creates a request scope from a verified payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:  userID,
		Email:   payload.Email,
		IsStaff: payload.Role == model.RoleStaff,
	}
}

type scopeKey struct{}

// SetScopeToContext attaches the scope to the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, sc)
}

// GetScopeFromContext returns the scope stored in the context, or the zero
// scope when none was set.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeKey{}).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}

// CreateScopeHeader encodes a scope for propagation between services.
func CreateScopeHeader(sc model.Scope) (string, error) {
	jsonData, err := json.Marshal(sc)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(jsonData), nil
}

// ParseScopeHeader decodes a scope header produced by CreateScopeHeader.
func ParseScopeHeader(scopeHeader string) (model.Scope, error) {
	jsonData, err := base64.StdEncoding.DecodeString(scopeHeader)
	if err != nil {
		return model.Scope{}, err
	}

	var sc model.Scope
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return model.Scope{}, err
	}

	return sc, nil
}
