// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package api

import (
	"context"
	"time"

	"github.com/tomtom215/homeshelf/internal/homescreen"
	"github.com/tomtom215/homeshelf/internal/models"
)

// ResultsProvider answers results calls from the home-screen plugin.
// Implemented by *homescreen.Handler.
type ResultsProvider interface {
	GetResults(ctx context.Context, payload models.SectionPayload) models.QueryResult
}

// SectionCatalog exposes the configured profiles.
// Implemented by *sections.Store.
type SectionCatalog interface {
	List() []models.SectionProfile
	Find(id string) (models.SectionProfile, bool)
}

// SectionRegistrar builds descriptors and re-runs registration.
// Implemented by *homescreen.Registrar.
type SectionRegistrar interface {
	BuildDescriptor(profile *models.SectionProfile) models.SectionDescriptor
	RegisterNow(ctx context.Context) homescreen.RegistrationReport
}

// Pinger reports whether the Jellyfin server is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response helpers
//   - handlers_health.go: liveness and readiness probes
//   - handlers_sections.go: results and section endpoints
type Handler struct {
	results   ResultsProvider
	sections  SectionCatalog
	registrar SectionRegistrar // nil disables descriptor and register endpoints
	jellyfin  Pinger
	version   string
	startTime time.Time
}

// HandlerDeps groups the collaborators of a Handler.
type HandlerDeps struct {
	Results   ResultsProvider
	Sections  SectionCatalog
	Registrar SectionRegistrar
	Jellyfin  Pinger
	Version   string
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(api.HandlerDeps{
//	    Results:   homescreen.NewHandler(engine),
//	    Sections:  store,
//	    Registrar: registrar,
//	    Jellyfin:  catalog,
//	})
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security))
//	http.ListenAndServe(":8787", router.SetupChi())
func NewHandler(deps HandlerDeps) *Handler {
	version := deps.Version
	if version == "" {
		version = "dev"
	}
	return &Handler{
		results:   deps.Results,
		sections:  deps.Sections,
		registrar: deps.Registrar,
		jellyfin:  deps.Jellyfin,
		version:   version,
		startTime: time.Now(),
	}
}
