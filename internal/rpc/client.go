package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fystack/cardano-query/pkg/common/enum"
	"github.com/fystack/cardano-query/pkg/common/logger"
)

// NetworkClient identifies the provider behind a typed client.
type NetworkClient interface {
	GetProvider() enum.Provider
	GetURL() string
	Close() error
}

// BaseClient dispatches REST requests for one provider base URL.
type BaseClient struct {
	httpClient *http.Client
	baseURL    string
	auth       *AuthConfig
	provider   enum.Provider
}

// NewBaseClient creates a REST client. A zero timeout keeps the transport default.
func NewBaseClient(baseURL string, provider enum.Provider, auth *AuthConfig, timeout time.Duration) *BaseClient {
	return &BaseClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		auth:       auth,
		provider:   provider,
	}
}

// URL builds the request URL for an endpoint and query.
func (c *BaseClient) URL(endpoint string, query *Query) string {
	url := c.baseURL + endpoint
	if query.Len() > 0 {
		url += "?" + query.Encode()
	}
	return url
}

// Do sends one request and returns the raw 2xx body.
// Failures come back as *TransportError, *ProviderError, *NotFoundError or *AuthError.
func (c *BaseClient) Do(ctx context.Context, method, endpoint string, body any, query *Query) ([]byte, error) {
	url := c.URL(endpoint, query)

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.auth.apply(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	logger.Debug("HTTP request completed",
		"provider", c.provider,
		"method", method,
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyStatus(string(c.provider)+endpoint, resp.StatusCode, data)
	}
	return data, nil
}

func (c *BaseClient) GetProvider() enum.Provider { return c.provider }
func (c *BaseClient) GetURL() string             { return c.baseURL }
func (c *BaseClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
