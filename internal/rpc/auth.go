package rpc

import "net/http"

type AuthType string

const (
	AuthTypeHeader AuthType = "header"
	AuthTypeBearer AuthType = "bearer"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	Type  AuthType `json:"type"  yaml:"type"`
	Key   string   `json:"key"   yaml:"key"`
	Value string   `json:"value" yaml:"value"`
}

// HeaderAuth builds a static per-request header, e.g. Blockfrost's project_id.
func HeaderAuth(key, value string) *AuthConfig {
	return &AuthConfig{Type: AuthTypeHeader, Key: key, Value: value}
}

// BearerAuth returns nil for an empty token so that no Authorization header is sent.
func BearerAuth(token string) *AuthConfig {
	if token == "" {
		return nil
	}
	return &AuthConfig{Type: AuthTypeBearer, Value: token}
}

func (a *AuthConfig) apply(req *http.Request) {
	if a == nil {
		return
	}
	switch a.Type {
	case AuthTypeHeader:
		req.Header.Set(a.Key, a.Value)
	case AuthTypeBearer:
		req.Header.Set("Authorization", "Bearer "+a.Value)
	}
}
