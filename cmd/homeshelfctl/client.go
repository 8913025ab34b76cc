// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/homeshelf/internal/models"
)

const apiPrefix = "/api/v1"

// maxResponseBytes caps how much of a response is read.
const maxResponseBytes = 4 << 20

// apiClient talks to the Homeshelf HTTP API.
type apiClient struct {
	baseURL    string
	httpClient *http.Client
}

func newAPIClient(baseURL string, timeout time.Duration) *apiClient {
	return &apiClient{
		baseURL:    strings.TrimSuffix(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// envelope mirrors models.APIResponse with the payload left raw.
type envelope struct {
	Status string           `json:"status"`
	Data   json.RawMessage  `json:"data"`
	Error  *models.APIError `json:"error,omitempty"`
}

// apiError is an error response from the server.
type apiError struct {
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// getData fetches an enveloped endpoint and decodes its data into out.
func (c *apiClient) getData(ctx context.Context, path string, out any) error {
	return c.doData(ctx, http.MethodGet, path, out)
}

// postData posts an empty body to an enveloped endpoint.
func (c *apiClient) postData(ctx context.Context, path string, out any) error {
	return c.doData(ctx, http.MethodPost, path, out)
}

func (c *apiClient) doData(ctx context.Context, method, path string, out any) error {
	body, status, err := c.do(ctx, method, path)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		if status >= 400 {
			return &apiError{Status: status}
		}
		return fmt.Errorf("decode response from %s: %w", path, err)
	}
	if env.Error != nil {
		return &apiError{Status: status, Code: env.Error.Code, Message: env.Error.Message}
	}
	if status >= 400 {
		return &apiError{Status: status}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data from %s: %w", path, err)
	}
	return nil
}

// results fetches a section's items for a user. The results endpoint
// returns a bare QueryResult, not an envelope.
func (c *apiClient) results(ctx context.Context, sectionID, userID string) (models.QueryResult, error) {
	path := apiPrefix + "/sections/" + url.PathEscape(sectionID) + "/results?userId=" + url.QueryEscape(userID)

	body, status, err := c.do(ctx, http.MethodGet, path)
	if err != nil {
		return models.QueryResult{}, err
	}
	if status != http.StatusOK {
		return models.QueryResult{}, &apiError{Status: status}
	}

	var result models.QueryResult
	if err := json.Unmarshal(body, &result); err != nil {
		return models.QueryResult{}, fmt.Errorf("decode results: %w", err)
	}
	return result, nil
}

func (c *apiClient) do(ctx context.Context, method, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("contact homeshelf at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return body, resp.StatusCode, nil
}
