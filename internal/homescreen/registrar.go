// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package homescreen

import (
	"context"
	"strings"
	"time"

	"github.com/tomtom215/homeshelf/internal/logging"
	"github.com/tomtom215/homeshelf/internal/metrics"
	"github.com/tomtom215/homeshelf/internal/models"
)

// DescriptorLimit is the limit value sent with every descriptor.
const DescriptorLimit = 1

// DefaultRoute opens the movies library view when the section header is
// clicked.
const DefaultRoute = "web/#/movies?topParentId=f137a2dd21bbc1b99aa5c0f6bf02a805&collectionType=movies"

// DefaultStartupDelay gives Jellyfin time to load its plugins before the
// first registration.
const DefaultStartupDelay = 2 * time.Second

// ResultsPath is the path of the results endpoint relative to the public
// base URL.
const ResultsPath = "/api/v1/sections/results"

// Surface is the home-screen plugin's registration endpoint.
type Surface interface {
	Available(ctx context.Context) (bool, error)
	RegisterSection(ctx context.Context, descriptor models.SectionDescriptor) error
}

// ProfileLister lists section profiles in configuration order.
type ProfileLister interface {
	List() []models.SectionProfile
}

// RegistrarConfig configures a Registrar.
type RegistrarConfig struct {
	// Delay before the first attempt. Zero registers immediately.
	Delay time.Duration

	// DefaultRoute is used for profiles without their own route.
	DefaultRoute string

	// PublicURL is the base URL at which Jellyfin reaches this service.
	PublicURL string
}

// RegistrationReport summarizes one RegisterAll run.
type RegistrationReport struct {
	Total      int      `json:"total"`
	Registered int      `json:"registered"`
	Failed     []string `json:"failed,omitempty"`
	Skipped    bool     `json:"skipped"`
	Reason     string   `json:"reason,omitempty"`
}

// Registrar announces section profiles to the home-screen plugin.
type Registrar struct {
	surface  Surface
	profiles ProfileLister
	cfg      RegistrarConfig
}

// NewRegistrar creates a Registrar.
func NewRegistrar(surface Surface, profiles ProfileLister, cfg RegistrarConfig) *Registrar {
	if cfg.DefaultRoute == "" {
		cfg.DefaultRoute = DefaultRoute
	}
	cfg.PublicURL = strings.TrimSuffix(cfg.PublicURL, "/")
	return &Registrar{surface: surface, profiles: profiles, cfg: cfg}
}

// BuildDescriptor returns the registration payload for profile. The
// profile ID is both the section identifier and the AdditionalData echoed
// back on every results call.
func (r *Registrar) BuildDescriptor(profile *models.SectionProfile) models.SectionDescriptor {
	route := profile.Route
	if route == "" {
		route = r.cfg.DefaultRoute
	}
	return models.SectionDescriptor{
		ID:              profile.ID,
		DisplayText:     profile.DisplayName,
		Limit:           DescriptorLimit,
		Route:           route,
		AdditionalData:  profile.ID,
		ResultsEndpoint: r.cfg.PublicURL + ResultsPath,
	}
}

// RegisterAll waits for the configured delay and registers every profile.
// A failed profile is logged and skipped.
func (r *Registrar) RegisterAll(ctx context.Context) RegistrationReport {
	if r.cfg.Delay > 0 {
		timer := time.NewTimer(r.cfg.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return RegistrationReport{Skipped: true, Reason: "cancelled"}
		case <-timer.C:
		}
	}
	return r.register(ctx)
}

// RegisterNow registers every profile without the startup delay.
func (r *Registrar) RegisterNow(ctx context.Context) RegistrationReport {
	return r.register(ctx)
}

func (r *Registrar) register(ctx context.Context) RegistrationReport {
	logger := logging.WithComponent("registrar")
	profiles := r.profiles.List()
	report := RegistrationReport{Total: len(profiles)}

	if len(profiles) == 0 {
		logger.Info().Msg("No sections configured, nothing to register")
		return report
	}

	available, err := r.surface.Available(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("Home screen plugin check failed, skipping registration")
		metrics.RecordRegistration(metrics.OutcomeSurfaceMissing)
		report.Skipped, report.Reason = true, "surface check failed"
		return report
	}
	if !available {
		logger.Warn().Msg("Home screen plugin not available, skipping registration")
		metrics.RecordRegistration(metrics.OutcomeSurfaceMissing)
		report.Skipped, report.Reason = true, "surface unavailable"
		return report
	}

	for i := range profiles {
		descriptor := r.BuildDescriptor(&profiles[i])
		if err := r.surface.RegisterSection(ctx, descriptor); err != nil {
			logger.Error().
				Err(err).
				Str("section_id", descriptor.ID).
				Str("display_name", descriptor.DisplayText).
				Msg("Failed to register section")
			metrics.RecordRegistration(metrics.OutcomeRegisterFailed)
			report.Failed = append(report.Failed, descriptor.ID)
			continue
		}
		metrics.RecordRegistration(metrics.OutcomeRegistered)
		report.Registered++
		logger.Debug().Str("section_id", descriptor.ID).Str("display_name", descriptor.DisplayText).Msg("Registered section")
	}

	logger.Info().
		Int("registered", report.Registered).
		Int("total", report.Total).
		Msgf("Registered %d of %d sections", report.Registered, report.Total)

	return report
}
