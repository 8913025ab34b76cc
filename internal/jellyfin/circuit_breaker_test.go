// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package jellyfin

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

// stubAPI fails every call with err.
type stubAPI struct {
	err   error
	calls int
}

func (s *stubAPI) Ping(context.Context) error { s.calls++; return s.err }
func (s *stubAPI) GetSystemInfo(context.Context) (*SystemInfo, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &SystemInfo{Version: "10.9.0"}, nil
}
func (s *stubAPI) GetUser(context.Context, string) (*User, error) { s.calls++; return nil, s.err }
func (s *stubAPI) GetItems(context.Context, string, url.Values) (*ItemsResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &ItemsResponse{Items: []BaseItem{}}, nil
}
func (s *stubAPI) GetPlugins(context.Context) ([]PluginInfo, error) { s.calls++; return nil, s.err }
func (s *stubAPI) PostJSON(context.Context, string, interface{}) error {
	s.calls++
	return s.err
}

func testBreakerConfig() BreakerConfig {
	return BreakerConfig{MaxRequests: 1, Interval: time.Minute, Timeout: time.Minute, MinRequests: 3, FailureRatio: 0.5}
}

func TestCircuitBreakerOpensAfterFailures(t *testing.T) {
	stub := &stubAPI{err: errors.New("connection refused")}
	cbc := NewCircuitBreakerClient(stub, testBreakerConfig())

	for i := 0; i < 3; i++ {
		_ = cbc.Ping(context.Background())
	}
	checkStringEqual(t, "state", stateToString(cbc.State()), "open")

	err := cbc.Ping(context.Background())
	checkTrue(t, "rejected while open", errors.Is(err, gobreaker.ErrOpenState))
	checkIntEqual(t, "underlying calls", stub.calls, 3)
}

func TestCircuitBreakerIgnoresNotFound(t *testing.T) {
	stub := &stubAPI{err: &StatusError{Operation: "get_user", StatusCode: 404}}
	cbc := NewCircuitBreakerClient(stub, testBreakerConfig())

	for i := 0; i < 5; i++ {
		_, err := cbc.GetUser(context.Background(), "missing")
		checkTrue(t, "not found passes through", errors.Is(err, ErrNotFound))
	}
	checkStringEqual(t, "state", stateToString(cbc.State()), "closed")
}

func TestCircuitBreakerPassesResults(t *testing.T) {
	cbc := NewCircuitBreakerClient(&stubAPI{}, DefaultBreakerConfig())

	info, err := cbc.GetSystemInfo(context.Background())
	checkNoError(t, err)
	checkStringEqual(t, "version", info.Version, "10.9.0")

	resp, err := cbc.GetItems(context.Background(), "/Items", url.Values{})
	checkNoError(t, err)
	checkIntEqual(t, "items", len(resp.Items), 0)

	plugins, err := cbc.GetPlugins(context.Background())
	checkNoError(t, err)
	checkIntEqual(t, "plugins", len(plugins), 0)
	checkStringEqual(t, "name", cbc.Name(), "jellyfin-api")
}

func TestStateConversions(t *testing.T) {
	checkStringEqual(t, "closed", stateToString(gobreaker.StateClosed), "closed")
	checkStringEqual(t, "half-open", stateToString(gobreaker.StateHalfOpen), "half-open")
	checkTrue(t, "open is 2", stateToFloat(gobreaker.StateOpen) == 2)
}
