// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/homeshelf/internal/api"
	"github.com/tomtom215/homeshelf/internal/config"
	"github.com/tomtom215/homeshelf/internal/filter"
	"github.com/tomtom215/homeshelf/internal/homescreen"
	"github.com/tomtom215/homeshelf/internal/jellyfin"
	"github.com/tomtom215/homeshelf/internal/logging"
	"github.com/tomtom215/homeshelf/internal/metrics"
	"github.com/tomtom215/homeshelf/internal/sections"
)

// detectTimeout bounds the startup version probe.
const detectTimeout = 10 * time.Second

// app holds the wired components of a running server.
type app struct {
	cfg       *config.Config
	catalog   *jellyfin.Catalog
	store     *sections.Store
	engine    *filter.Engine
	registrar *homescreen.Registrar
	server    *http.Server
}

// newApp wires every component from cfg. It does not start anything.
func newApp(ctx context.Context, cfg *config.Config) *app {
	client := jellyfin.NewClient(jellyfin.ClientConfig{
		BaseURL:           cfg.Jellyfin.URL,
		APIKey:            cfg.Jellyfin.APIKey,
		Timeout:           cfg.Jellyfin.Timeout,
		RequestsPerSecond: cfg.Jellyfin.RequestsPerSecond,
		ClientVersion:     version,
	})
	jf := jellyfin.NewCircuitBreakerClient(client, jellyfin.DefaultBreakerConfig())

	catalog := detectCatalog(ctx, jf, cfg.Jellyfin.APIVersion)

	store := sections.NewStore(cfg.Profiles())
	metrics.SectionsConfigured.Set(float64(store.Len()))
	if store.Len() == 0 {
		logging.Warn().Msg("No sections configured; every results request will be empty")
	}

	engine := filter.NewEngine(catalog, store, filter.WithFetchLimit(cfg.Filter.FetchLimit))

	registrar := homescreen.NewRegistrar(
		jellyfin.NewHomeScreenSurface(jf, cfg.Registration.PluginName, cfg.Registration.Path),
		store,
		homescreen.RegistrarConfig{
			Delay:        cfg.Registration.Delay,
			DefaultRoute: cfg.Registration.Route,
			PublicURL:    cfg.Registration.PublicURL,
		},
	)

	handler := api.NewHandler(api.HandlerDeps{
		Results:   homescreen.NewHandler(engine),
		Sections:  store,
		Registrar: registrar,
		Jellyfin:  catalog,
		Version:   version,
	})
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	return &app{
		cfg:       cfg,
		catalog:   catalog,
		store:     store,
		engine:    engine,
		registrar: registrar,
		server:    server,
	}
}

// detectCatalog picks the route style. A failed probe falls back to modern
// routes so an unreachable server at boot does not stop the process.
func detectCatalog(ctx context.Context, client jellyfin.API, override string) *jellyfin.Catalog {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	catalog, err := jellyfin.DetectCatalog(ctx, client, override)
	if err != nil {
		logging.Warn().Err(err).Msg("Jellyfin version detection failed, assuming modern routes")
		return jellyfin.NewModernCatalog(client)
	}
	return catalog
}

// startupWarnings lists configuration choices worth flagging at boot.
func startupWarnings(cfg *config.Config) []string {
	var warnings []string
	if cfg.HasWildcardCORS() {
		warnings = append(warnings, "CORS allows any origin; set CORS_ORIGINS to restrict it")
	}
	if cfg.Registration.Enabled && cfg.Registration.PublicURL == "" {
		warnings = append(warnings, "PUBLIC_URL is empty; sections register a relative results endpoint")
	}
	return warnings
}
