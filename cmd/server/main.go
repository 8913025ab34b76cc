// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/homeshelf/docs" // Import generated swagger docs
	"github.com/tomtom215/homeshelf/internal/config"
	"github.com/tomtom215/homeshelf/internal/logging"
	"github.com/tomtom215/homeshelf/internal/supervisor"
	"github.com/tomtom215/homeshelf/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Config errors go to the default logger; config is not available yet.
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("jellyfin_url", cfg.Jellyfin.URL).
		Int("sections", len(cfg.Sections)).
		Bool("registration", cfg.Registration.Enabled).
		Msg("Starting Homeshelf")

	for _, warning := range startupWarnings(cfg) {
		logging.Warn().Msg(warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := newApp(ctx, cfg)

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(a.server, a.server.Addr, 10*time.Second))

	var registration *services.RegistrationService
	if cfg.Registration.Enabled {
		registration = services.NewRegistrationService(a.registrar)
		tree.AddSectionService(registration)
	} else {
		logging.Info().Msg("Section registration disabled (REGISTRATION_ENABLED=false)")
	}

	tree.AddSectionService(services.NewConfigWatchService(a.store, services.ConfigWatchConfig{
		Path: config.FindConfigFile(),
		OnReload: func(*config.Config) {
			if registration != nil {
				registration.Trigger()
			}
		},
	}))

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	// ServeBackground sends exactly one result and never closes the channel.
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for services to stop")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Homeshelf stopped")
}
