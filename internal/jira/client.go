package jira

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jira_mcp/internal/auth"
	"jira_mcp/internal/logger"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the Jira instance every tool talks to.
	DefaultBaseURL = "https://project.ssgadm.com"
	// DefaultTimeout bounds a single upstream round trip.
	DefaultTimeout = 30 * time.Second
)

// RequestObserver receives the outcome of each upstream request.
// status is 0 when no response was obtained.
type RequestObserver interface {
	ObserveRequest(method string, status int, elapsed time.Duration)
}

// Client is the single shared HTTP call wrapper for the Jira REST API.
// A nil header set means authentication is not configured and every call fails fast.
type Client struct {
	baseURL    string
	headers    *auth.HeaderSet
	httpClient *http.Client
	observer   RequestObserver
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithObserver registers a RequestObserver.
func WithObserver(o RequestObserver) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// NewHTTPClient builds the HTTP client used for Jira. TLS verification is
// skipped when insecure is set, which is the documented policy for this upstream.
func NewHTTPClient(timeout time.Duration, insecure bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: insecure} //nolint:gosec
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// NewClient creates a Jira client for baseURL using headers for authentication.
func NewClient(baseURL string, headers *auth.HeaderSet, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		headers:    headers,
		httpClient: NewHTTPClient(DefaultTimeout, true),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Authenticated reports whether a header set is available.
func (c *Client) Authenticated() bool {
	return c.headers != nil
}

// Do performs one request against path (e.g. "/rest/api/2/search") and
// returns the decoded JSON body.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	if c.headers == nil {
		return nil, ErrAuthNotConfigured
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.headers.Apply(req)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(method, 0, start)
		logger.GetLogger().Error("jira request error", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()
	c.observe(method, resp.StatusCode, start)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.GetLogger().Error("jira http error",
			zap.Int("status", resp.StatusCode),
			zap.String("path", path),
			zap.String("body", truncate(string(respBody), maxBodyExcerpt)))
		return nil, newHTTPError(resp.StatusCode, respBody)
	}

	var result any
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return result, nil
}

func (c *Client) observe(method string, status int, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveRequest(method, status, time.Since(start))
	}
}
