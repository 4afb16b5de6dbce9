package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrNotFound      = errors.New("not found")
	ErrAuth          = errors.New("authentication failed")
)

// ErrorEnvelope is the error body returned by providers on non-2xx responses
type ErrorEnvelope struct {
	StatusCode int    `json:"status_code"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// ConfigurationError reports a missing required input, raised before any network call.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("configuration error: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("configuration error: %s is required", e.Field)
}

// Require returns a *ConfigurationError when value is empty.
func Require(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ConfigurationError{Field: field}
	}
	return nil
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// TransportError is a network failure or a non-2xx response without a usable error envelope.
type TransportError struct {
	Status int
	Raw    string
	Err    error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("transport error: %v", e.Err)
	case e.Status != 0:
		return fmt.Sprintf("transport error: HTTP %d: %s", e.Status, e.Raw)
	default:
		return "transport error: " + e.Raw
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// ProviderError is a non-2xx response carrying a decodable error envelope.
type ProviderError struct {
	Status  int
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s - %s", e.Status, e.Code, e.Message)
}

// DecodeError is a 2xx response whose body does not match the expected shape.
type DecodeError struct {
	Body string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// NotFoundError is an explicit 404, or an empty array from a batched lookup.
// Cause holds the ProviderError/TransportError of a 404, nil for an empty array.
type NotFoundError struct {
	Resource string
	Cause    error
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s not found: %v", e.Resource, e.Cause)
	}
	return e.Resource + " not found"
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
func (e *NotFoundError) Unwrap() error        { return e.Cause }

// AuthError is a 401/403 response.
type AuthError struct {
	Status int
	Cause  error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed (HTTP %d): %v", e.Status, e.Cause)
}

func (e *AuthError) Is(target error) bool { return target == ErrAuth }
func (e *AuthError) Unwrap() error        { return e.Cause }

// classifyStatus turns a non-2xx response into exactly one typed error.
func classifyStatus(resource string, status int, body []byte) error {
	var base error
	var env ErrorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		code := env.StatusCode
		if code == 0 {
			code = status
		}
		base = &ProviderError{Status: code, Code: env.Error, Message: env.Message}
	} else {
		raw := strings.TrimSpace(string(body))
		if raw == "" {
			raw = http.StatusText(status)
		}
		base = &TransportError{Status: status, Raw: raw}
	}

	switch status {
	case http.StatusNotFound:
		return &NotFoundError{Resource: resource, Cause: base}
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthError{Status: status, Cause: base}
	default:
		return base
	}
}
