// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package jellyfin

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantURL string
	}{
		{"basic URL", "http://localhost:8096", "http://localhost:8096"},
		{"URL with trailing slash", "http://localhost:8096/", "http://localhost:8096"},
		{"HTTPS URL", "https://jellyfin.example.com/", "https://jellyfin.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(ClientConfig{BaseURL: tt.baseURL, APIKey: testAPIKey})
			checkStringEqual(t, "baseURL", client.BaseURL(), tt.wantURL)
			checkTrue(t, "default timeout", client.httpClient.Timeout == 30*time.Second)
		})
	}
}

func TestClientGetUser(t *testing.T) {
	f := newFakeServer(t)
	f.users["u1"] = User{ID: "u1", Name: "alice"}

	user, err := f.client().GetUser(context.Background(), "u1")
	checkNoError(t, err)
	checkStringEqual(t, "name", user.Name, "alice")

	_, err = f.client().GetUser(context.Background(), "missing")
	checkTrue(t, "ErrNotFound for missing user", errors.Is(err, ErrNotFound))
}

func TestClientStatusErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, APIKey: testAPIKey})
	_, err := client.GetItems(context.Background(), "/Items", url.Values{})

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	checkIntEqual(t, "status", statusErr.StatusCode, http.StatusInternalServerError)
	checkStringEqual(t, "body", statusErr.Body, "boom")
	checkTrue(t, "ErrUnexpectedStatus", errors.Is(err, ErrUnexpectedStatus))
	checkTrue(t, "not ErrNotFound", !errors.Is(err, ErrNotFound))
}

func TestClientDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, APIKey: testAPIKey})
	_, err := client.GetSystemInfo(context.Background())
	checkTrue(t, "decode error reported", err != nil)
}

func TestClientPingAndPost(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		verifyJellyfinHeaders(t, r)
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, APIKey: testAPIKey})
	checkNoError(t, client.Ping(context.Background()))
	checkStringEqual(t, "ping path", gotPath, "/System/Ping")

	checkNoError(t, client.PostJSON(context.Background(), "/HomeScreen/RegisterSection", map[string]string{"id": "x"}))
	checkStringEqual(t, "post method", gotMethod, http.MethodPost)
}

func TestClientHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewClient(ClientConfig{BaseURL: server.URL, APIKey: testAPIKey})
	err := client.Ping(ctx)
	checkTrue(t, "context deadline error", err != nil)
}

func TestClientRateLimiterCancelled(t *testing.T) {
	client := NewClient(ClientConfig{BaseURL: "http://127.0.0.1:1", APIKey: testAPIKey, RequestsPerSecond: 0.001, Burst: 1})
	// Drain the single token.
	client.limiter.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := client.Ping(ctx)
	checkTrue(t, "limiter error on cancelled context", err != nil)
}
