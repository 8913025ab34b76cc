// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package jellyfin

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
)

const testAPIKey = "test-api-key"

func checkStringEqual(t *testing.T, fieldName, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: expected %q, got %q", fieldName, want, got)
	}
}

func checkIntEqual(t *testing.T, fieldName string, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("%s: expected %d, got %d", fieldName, want, got)
	}
}

func checkNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func checkTrue(t *testing.T, msg string, cond bool) {
	t.Helper()
	if !cond {
		t.Errorf("expected true: %s", msg)
	}
}

func verifyJellyfinHeaders(t *testing.T, r *http.Request) {
	t.Helper()
	checkStringEqual(t, "X-Emby-Token", r.Header.Get("X-Emby-Token"), testAPIKey)
	checkStringEqual(t, "X-Emby-Client", r.Header.Get("X-Emby-Client"), "Homeshelf")
	checkStringEqual(t, "Accept", r.Header.Get("Accept"), "application/json")
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode response: %v", err)
	}
}

// fakeServer is an in-memory Jellyfin that serves /Items style queries from
// a fixed item table and records every request.
type fakeServer struct {
	t        *testing.T
	mu       sync.Mutex
	items    map[string]BaseItem
	order    []string
	users    map[string]User
	plugins  []PluginInfo
	requests []*http.Request
	posted   [][]byte
	server   *httptest.Server
}

func newFakeServer(t *testing.T) *fakeServer {
	t.Helper()
	f := &fakeServer{
		t:     t,
		items: map[string]BaseItem{},
		users: map[string]User{},
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeServer) client() *Client {
	return NewClient(ClientConfig{BaseURL: f.server.URL, APIKey: testAPIKey})
}

func (f *fakeServer) addItem(item BaseItem) {
	f.items[item.ID] = item
	f.order = append(f.order, item.ID)
}

func (f *fakeServer) recorded() []*http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*http.Request(nil), f.requests...)
}

func (f *fakeServer) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r)
	f.mu.Unlock()
	verifyJellyfinHeaders(f.t, r)

	switch {
	case r.URL.Path == "/System/Info":
		writeJSON(f.t, w, SystemInfo{ServerName: "test", Version: "10.10.3"})
	case r.URL.Path == "/Plugins":
		writeJSON(f.t, w, f.plugins)
	case r.Method == http.MethodPost:
		var body json.RawMessage
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.mu.Lock()
		f.posted = append(f.posted, body)
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	case r.URL.Path == "/Items" || strings.HasSuffix(r.URL.Path, "/Items"):
		writeJSON(f.t, w, f.query(r))
	case strings.HasPrefix(r.URL.Path, "/Users/"):
		id := strings.TrimPrefix(r.URL.Path, "/Users/")
		user, ok := f.users[id]
		if !ok {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		writeJSON(f.t, w, user)
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeServer) query(r *http.Request) ItemsResponse {
	q := r.URL.Query()
	var out []BaseItem
	if ids := q.Get("Ids"); ids != "" {
		for _, id := range strings.Split(ids, ",") {
			if item, ok := f.items[id]; ok {
				out = append(out, item)
			}
		}
		return ItemsResponse{Items: out, TotalRecordCount: len(out)}
	}
	types := map[string]bool{}
	for _, k := range strings.Split(q.Get("IncludeItemTypes"), ",") {
		types[k] = true
	}
	for _, id := range f.order {
		if item := f.items[id]; types[item.Type] {
			out = append(out, item)
		}
	}
	return ItemsResponse{Items: out, TotalRecordCount: len(out)}
}
