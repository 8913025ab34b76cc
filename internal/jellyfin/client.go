// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

/*
Package jellyfin talks to the Jellyfin REST API on behalf of the section
filter.

It provides:

  - Client: rate limited REST client authenticated with an API key
  - CircuitBreakerClient: the same API behind a sony/gobreaker breaker
  - Catalog: the filter's catalog view, in legacy (< 10.9) and modern
    route styles, selected once at startup by DetectCatalog
  - HomeScreenSurface: registration of sections with the Home Screen
    Sections plugin

API Reference: https://api.jellyfin.org/
*/
package jellyfin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/homeshelf/internal/metrics"
)

// Sentinel errors. StatusError unwraps to one of them.
var (
	ErrNotFound         = errors.New("jellyfin: not found")
	ErrUnexpectedStatus = errors.New("jellyfin: unexpected status")
)

// maxErrorBody bounds how much of an error response is kept.
const maxErrorBody = 512

// StatusError reports a non-2xx response.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("jellyfin %s returned status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("jellyfin %s returned status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// Unwrap maps 404 to ErrNotFound and everything else to ErrUnexpectedStatus.
func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return ErrUnexpectedStatus
}

// API is the set of Jellyfin calls Homeshelf makes. Client and
// CircuitBreakerClient both implement it.
type API interface {
	Ping(ctx context.Context) error
	GetSystemInfo(ctx context.Context) (*SystemInfo, error)
	GetUser(ctx context.Context, userID string) (*User, error)
	GetItems(ctx context.Context, path string, query url.Values) (*ItemsResponse, error)
	GetPlugins(ctx context.Context) ([]PluginInfo, error)
	PostJSON(ctx context.Context, path string, body interface{}) error
}

// Ensure Client implements API
var _ API = (*Client)(nil)

// ClientConfig configures a Client.
type ClientConfig struct {
	// BaseURL is the Jellyfin server URL (e.g. http://localhost:8096).
	BaseURL string

	// APIKey is created under Dashboard > API Keys.
	APIKey string

	// Timeout defaults to 30s.
	Timeout time.Duration

	// RequestsPerSecond limits outgoing calls. Zero disables limiting.
	RequestsPerSecond float64

	// Burst defaults to 10 when limiting is enabled.
	Burst int

	// ClientVersion is sent in X-Emby-Client-Version.
	ClientVersion string
}

// Client provides access to the Jellyfin REST API.
type Client struct {
	baseURL       string
	apiKey        string
	clientVersion string
	httpClient    *http.Client
	limiter       *rate.Limiter
}

// NewClient creates a Jellyfin API client.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 10
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	version := cfg.ClientVersion
	if version == "" {
		version = "dev"
	}

	return &Client{
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:        cfg.APIKey,
		clientVersion: version,
		httpClient:    &http.Client{Timeout: timeout},
		limiter:       limiter,
	}
}

// BaseURL returns the normalized server URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ping tests connectivity to the Jellyfin server.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, "ping", http.MethodGet, "/System/Ping", nil, nil)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	return nil
}

// GetSystemInfo retrieves server name and version.
func (c *Client) GetSystemInfo(ctx context.Context) (*SystemInfo, error) {
	var info SystemInfo
	if err := c.getJSON(ctx, "system_info", "/System/Info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetUser retrieves one user. A missing user yields an error wrapping
// ErrNotFound.
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	var user User
	if err := c.getJSON(ctx, "get_user", "/Users/"+url.PathEscape(userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetItems runs an items query against path (/Items or /Users/{id}/Items).
func (c *Client) GetItems(ctx context.Context, path string, query url.Values) (*ItemsResponse, error) {
	var resp ItemsResponse
	if err := c.getJSON(ctx, "get_items", path, query, &resp); err != nil {
		return nil, err
	}
	if resp.Items == nil {
		resp.Items = []BaseItem{}
	}
	return &resp, nil
}

// GetPlugins lists installed server plugins.
func (c *Client) GetPlugins(ctx context.Context) ([]PluginInfo, error) {
	var plugins []PluginInfo
	if err := c.getJSON(ctx, "get_plugins", "/Plugins", nil, &plugins); err != nil {
		return nil, err
	}
	return plugins, nil
}

// PostJSON posts body as JSON to path and discards the response.
func (c *Client) PostJSON(ctx context.Context, path string, body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	resp, err := c.do(ctx, "post", http.MethodPost, path, nil, data)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, query url.Values, out interface{}) error {
	resp, err := c.do(ctx, op, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode jellyfin %s response: %w", op, err)
	}
	return nil
}

// do sends one request and returns the response when the status is 2xx.
// Non-2xx responses are closed and reported as *StatusError.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body []byte) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("jellyfin %s: rate limiter: %w", op, err)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Emby-Token", c.apiKey)
	req.Header.Set("X-Emby-Client", "Homeshelf")
	req.Header.Set("X-Emby-Device-Name", "Homeshelf")
	req.Header.Set("X-Emby-Device-Id", "homeshelf")
	req.Header.Set("X-Emby-Client-Version", c.clientVersion)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordJellyfinRequest(op, "error", time.Since(start))
		return nil, fmt.Errorf("jellyfin %s request failed: %w", op, err)
	}
	metrics.RecordJellyfinRequest(op, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer func() { _ = resp.Body.Close() }()
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{Operation: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	return resp, nil
}
