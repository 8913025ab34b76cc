// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testUser = "0f6e0f7a1b2c4d3e8f9a0b1c2d3e4f50"

// fakeHomeshelf serves canned API responses keyed by "METHOD path".
func fakeHomeshelf(t *testing.T, routes map[string]struct {
	status int
	body   string
}) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(route.status)
		_, _ = w.Write([]byte(route.body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

type cannedRoutes = map[string]struct {
	status int
	body   string
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func requireContains(t *testing.T, haystack string, needles ...string) {
	t.Helper()
	for _, n := range needles {
		if !strings.Contains(haystack, n) {
			t.Fatalf("output missing %q:\n%s", n, haystack)
		}
	}
}

const sectionsBody = `{"status":"success","data":[
	{"id":"recent-movies","display_name":"Recently Added Movies","include_movies":true,"include_series":false,"include_music":false,"sort_by":"DateCreated","sort_descending":true},
	{"id":"shuffle","display_name":"Something Random","include_movies":true,"include_series":true,"include_music":false,"sort_by":"Random","sort_descending":true}
],"metadata":{"timestamp":"2026-01-01T00:00:00Z"}}`

func TestSectionsList(t *testing.T) {
	srv := fakeHomeshelf(t, cannedRoutes{
		"GET /api/v1/sections": {http.StatusOK, sectionsBody},
	})

	out, err := runCLI(t, "--server", srv.URL, "sections", "list")
	if err != nil {
		t.Fatalf("sections list: %v", err)
	}
	requireContains(t, out, "recent-movies", "Recently Added Movies", "DateCreated desc", "movies, series", "Random")

	out, err = runCLI(t, "--server", srv.URL, "--json", "sections", "list")
	if err != nil {
		t.Fatalf("sections list --json: %v", err)
	}
	requireContains(t, out, `"id": "recent-movies"`)
}

func TestSectionsShowNotFound(t *testing.T) {
	srv := fakeHomeshelf(t, cannedRoutes{
		"GET /api/v1/sections/missing": {http.StatusNotFound,
			`{"status":"error","data":null,"error":{"code":"NOT_FOUND","message":"section not found: missing"}}`},
	})

	_, err := runCLI(t, "--server", srv.URL, "sections", "show", "missing")
	if err == nil {
		t.Fatal("expected error for unknown section")
	}
	requireContains(t, err.Error(), "NOT_FOUND")
}

func TestSectionsDescriptor(t *testing.T) {
	srv := fakeHomeshelf(t, cannedRoutes{
		"GET /api/v1/sections/recent-movies/descriptor": {http.StatusOK, `{"status":"success","data":{
			"id":"recent-movies","displayText":"Recently Added Movies","limit":1,"route":"web/#/movies",
			"additionalData":"recent-movies","resultsEndpoint":"http://homeshelf:8787/api/v1/sections/results"}}`},
	})

	out, err := runCLI(t, "--server", srv.URL, "sections", "descriptor", "recent-movies")
	if err != nil {
		t.Fatalf("sections descriptor: %v", err)
	}
	requireContains(t, out, "resultsEndpoint", "http://homeshelf:8787/api/v1/sections/results", "additionalData")
}

func TestSectionsPreview(t *testing.T) {
	restore := now
	now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = restore })

	srv := fakeHomeshelf(t, cannedRoutes{
		"GET /api/v1/sections/recent-movies/results": {http.StatusOK, `{"Items":[
			{"Id":"a","Name":"Arrival","Type":"Movie","ProductionYear":2016,"RunTimeTicks":69600000000,
			 "DateCreated":"2026-03-07T12:00:00Z","UserData":{"Played":true,"PlayCount":3}},
			{"Id":"b","Name":"Pilot","Type":"Series","SeriesName":"Severance"}
		],"TotalRecordCount":2,"StartIndex":0}`},
	})

	t.Run("requires user", func(t *testing.T) {
		_, err := runCLI(t, "--server", srv.URL, "sections", "preview", "recent-movies")
		if err == nil || !strings.Contains(err.Error(), "--user") {
			t.Fatalf("err = %v, want --user required", err)
		}
	})

	t.Run("renders items", func(t *testing.T) {
		out, err := runCLI(t, "--server", srv.URL, "sections", "preview", "recent-movies", "--user", testUser)
		if err != nil {
			t.Fatalf("sections preview: %v", err)
		}
		requireContains(t, out, "Arrival", "2016", "1h56m0s", "3 days ago", "3 times", "Severance: Pilot")
	})
}

func TestSectionsPreviewEmpty(t *testing.T) {
	srv := fakeHomeshelf(t, cannedRoutes{
		"GET /api/v1/sections/recent-movies/results": {http.StatusOK, `{"Items":[],"TotalRecordCount":0,"StartIndex":0}`},
	})

	out, err := runCLI(t, "--server", srv.URL, "sections", "preview", "recent-movies", "-u", testUser)
	if err != nil {
		t.Fatalf("sections preview: %v", err)
	}
	requireContains(t, out, "No items")
}

func TestSectionsRegister(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantOut string
		wantErr string
	}{
		{
			name:    "all registered",
			status:  http.StatusOK,
			body:    `{"status":"success","data":{"total":2,"registered":2,"skipped":false}}`,
			wantOut: "Registered 2 of 2 sections",
		},
		{
			name:    "partial failure",
			status:  http.StatusOK,
			body:    `{"status":"success","data":{"total":2,"registered":1,"failed":["shuffle"],"skipped":false}}`,
			wantOut: "Failed: shuffle",
			wantErr: "1 sections failed",
		},
		{
			name:    "plugin unavailable",
			status:  http.StatusServiceUnavailable,
			body:    `{"status":"error","data":null,"error":{"code":"SURFACE_UNAVAILABLE","message":"Home screen plugin unavailable"}}`,
			wantErr: "SURFACE_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := fakeHomeshelf(t, cannedRoutes{
				"POST /api/v1/sections/register": {tt.status, tt.body},
			})

			out, err := runCLI(t, "--server", srv.URL, "sections", "register")
			if tt.wantErr == "" && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tt.wantErr)) {
				t.Fatalf("err = %v, want containing %q", err, tt.wantErr)
			}
			if tt.wantOut != "" {
				requireContains(t, out, tt.wantOut)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	live := `{"status":"success","data":{"alive":true,"version":"1.2.0","uptime":3725.4}}`

	t.Run("ready", func(t *testing.T) {
		srv := fakeHomeshelf(t, cannedRoutes{
			"GET /api/v1/health/live":  {http.StatusOK, live},
			"GET /api/v1/health/ready": {http.StatusOK, `{"status":"success","data":{"ready":true,"jellyfin_connected":true,"sections":3}}`},
		})
		out, err := runCLI(t, "--server", srv.URL, "health")
		if err != nil {
			t.Fatalf("health: %v", err)
		}
		requireContains(t, out, "1.2.0", "1h2m5s", "connected")
	})

	t.Run("jellyfin down", func(t *testing.T) {
		srv := fakeHomeshelf(t, cannedRoutes{
			"GET /api/v1/health/live": {http.StatusOK, live},
			"GET /api/v1/health/ready": {http.StatusServiceUnavailable, `{"status":"error","data":{"ready":false,"jellyfin_connected":false,"sections":3},
				"error":{"code":"JELLYFIN_UNAVAILABLE","message":"Jellyfin server is not reachable"}}`},
		})
		out, err := runCLI(t, "--server", srv.URL, "health")
		if err != errNotReady {
			t.Fatalf("err = %v, want errNotReady", err)
		}
		requireContains(t, out, "unreachable")
	})
}

func TestServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := runCLI(t, "--server", url, "sections", "list")
	if err == nil || !strings.Contains(err.Error(), "contact homeshelf") {
		t.Fatalf("err = %v, want connection error", err)
	}
}

func TestConfigValidate(t *testing.T) {
	// Environment overrides the file, so clear what the file sets.
	for _, key := range []string{"JELLYFIN_URL", "JELLYFIN_API_KEY", "FILTER_FETCH_LIMIT", "CONFIG_PATH"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}

	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "config.yaml")
		content := `
jellyfin:
  url: http://jellyfin:8096
  api_key: 0123456789abcdef0123456789abcdef
filter:
  fetch_limit: 25000
sections:
  - id: recent-movies
    display_name: Recently Added Movies
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		out, err := runCLI(t, "config", "validate", "--config", path)
		if err != nil {
			t.Fatalf("config validate: %v", err)
		}
		requireContains(t, out, "Config path: "+path, "25,000 files", "recent-movies", "Configuration valid")
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		content := `
jellyfin:
  url: http://jellyfin:8096
  api_key: 0123456789abcdef0123456789abcdef
sections:
  - id: recent
    sort_by: Popularity
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		_, err := runCLI(t, "config", "validate", "--config", path)
		if err == nil || !strings.Contains(err.Error(), "sort_by") {
			t.Fatalf("err = %v, want sort_by validation error", err)
		}
	})
}

func TestRuntimeLabel(t *testing.T) {
	tests := []struct {
		ticks int64
		want  string
	}{
		{0, "-"},
		{-5, "-"},
		{int64(90 * time.Minute / 100), "1h30m0s"},
		{int64(45*time.Minute/100) + 300_000_000, "45m0s"},
	}
	for _, tt := range tests {
		if got := runtimeLabel(tt.ticks); got != tt.want {
			t.Errorf("runtimeLabel(%d) = %q, want %q", tt.ticks, got, tt.want)
		}
	}
}
