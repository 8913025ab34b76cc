// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/homeshelf/internal/homescreen"
	"github.com/tomtom215/homeshelf/internal/models"
)

type stubResults struct {
	mu       sync.Mutex
	payloads []models.SectionPayload
	result   models.QueryResult
	panics   bool
}

func (s *stubResults) GetResults(_ context.Context, payload models.SectionPayload) models.QueryResult {
	if s.panics {
		panic("boom")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, payload)
	return s.result
}

func (s *stubResults) calls() []models.SectionPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.SectionPayload(nil), s.payloads...)
}

type stubSections []models.SectionProfile

func (s stubSections) List() []models.SectionProfile { return append([]models.SectionProfile(nil), s...) }

func (s stubSections) Find(id string) (models.SectionProfile, bool) {
	for _, p := range s {
		if strings.EqualFold(p.ID, id) {
			return p, true
		}
	}
	return models.SectionProfile{}, false
}

type stubRegistrar struct {
	report    homescreen.RegistrationReport
	registers int
}

func (s *stubRegistrar) BuildDescriptor(p *models.SectionProfile) models.SectionDescriptor {
	return models.SectionDescriptor{
		ID:              p.ID,
		DisplayText:     p.DisplayName,
		Limit:           homescreen.DescriptorLimit,
		AdditionalData:  p.ID,
		ResultsEndpoint: "http://homeshelf:8787" + homescreen.ResultsPath,
	}
}

func (s *stubRegistrar) RegisterNow(context.Context) homescreen.RegistrationReport {
	s.registers++
	return s.report
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

var errUnreachable = errors.New("connection refused")

// testFixture bundles the stubs behind one router.
type testFixture struct {
	results   *stubResults
	registrar *stubRegistrar
	handler   http.Handler
}

func defaultSections() stubSections {
	recent := models.NewSectionProfile("recent")
	recent.DisplayName = "Recently Added"
	albums := models.NewSectionProfile("albums")
	albums.IncludeMusic = true
	return stubSections{recent, albums}
}

func newFixture(t *testing.T, mutate func(*HandlerDeps, *ChiMiddlewareConfig)) *testFixture {
	t.Helper()
	f := &testFixture{
		results: &stubResults{result: models.NewQueryResult([]models.ItemProjection{
			{ID: "m1", Name: "Movie One", Type: "Movie"},
		})},
		registrar: &stubRegistrar{report: homescreen.RegistrationReport{Total: 2, Registered: 2}},
	}
	deps := HandlerDeps{
		Results:   f.results,
		Sections:  defaultSections(),
		Registrar: f.registrar,
		Jellyfin:  stubPinger{},
		Version:   "test",
	}
	mwCfg := DefaultChiMiddlewareConfig()
	mwCfg.CORSAllowedOrigins = []string{"https://jellyfin.example.com"}
	if mutate != nil {
		mutate(&deps, mwCfg)
	}
	f.handler = NewRouter(NewHandler(deps), NewChiMiddleware(mwCfg)).SetupChi()
	return f
}

func (f *testFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func checkStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, want, rec.Body.String())
	}
}

func decodeQueryResult(t *testing.T, rec *httptest.ResponseRecorder) models.QueryResult {
	t.Helper()
	var result models.QueryResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode QueryResult: %v (body: %s)", err, rec.Body.String())
	}
	return result
}

// envelope mirrors models.APIResponse with raw data for per-test decoding.
type envelope struct {
	Status string           `json:"status"`
	Data   json.RawMessage  `json:"data"`
	Error  *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body: %s)", err, rec.Body.String())
	}
	return env
}
