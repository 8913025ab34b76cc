// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package services

import (
	"context"

	"github.com/tomtom215/homeshelf/internal/homescreen"
	"github.com/tomtom215/homeshelf/internal/logging"
)

// SectionRegistrar is the part of *homescreen.Registrar the service drives.
type SectionRegistrar interface {
	RegisterAll(ctx context.Context) homescreen.RegistrationReport
	RegisterNow(ctx context.Context) homescreen.RegistrationReport
}

// RegistrationService registers sections with the home-screen plugin once
// at startup (after the registrar's delay) and again whenever Trigger is
// called, typically after a configuration reload.
//
// Triggers that arrive while a registration is running are coalesced into
// one follow-up run.
type RegistrationService struct {
	registrar SectionRegistrar
	trigger   chan struct{}
	name      string

	// startupDone is closed after the first run; used by tests.
	startupDone chan struct{}
}

// NewRegistrationService creates the service.
func NewRegistrationService(registrar SectionRegistrar) *RegistrationService {
	return &RegistrationService{
		registrar:   registrar,
		trigger:     make(chan struct{}, 1),
		name:        "section-registration",
		startupDone: make(chan struct{}),
	}
}

// Trigger requests a re-registration. It never blocks.
func (s *RegistrationService) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Serve implements suture.Service.
//
// A restart after a panic repeats the startup registration, which is safe
// because the plugin replaces sections by ID.
func (s *RegistrationService) Serve(ctx context.Context) error {
	report := s.registrar.RegisterAll(ctx)
	s.markStartupDone()
	if report.Skipped && ctx.Err() != nil {
		return ctx.Err()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.trigger:
			logging.Info().Msg("Re-registering sections")
			s.registrar.RegisterNow(ctx)
		}
	}
}

func (s *RegistrationService) markStartupDone() {
	select {
	case <-s.startupDone:
	default:
		close(s.startupDone)
	}
}

// String implements fmt.Stringer for logging.
func (s *RegistrationService) String() string {
	return s.name
}
