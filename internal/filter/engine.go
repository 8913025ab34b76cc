// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

// Package filter implements the section filtering pipeline.
//
// One invocation turns the flat file-level catalog (movies, episodes, audio
// tracks) into at most MaxResults representative items for a home-screen
// section:
//
//  1. one catalog query for the profile's file kinds
//  2. drop files without a positive size
//  3. collapse files to their representative ancestor, first seen wins
//  4. order by the profile's sort key
//  5. truncate to MaxResults
//  6. project each survivor, skipping items whose projection fails
//
// Every failure degrades to an empty result. The engine never returns an
// error to its caller.
package filter

import (
	"context"
	"time"

	"github.com/tomtom215/homeshelf/internal/logging"
	"github.com/tomtom215/homeshelf/internal/metrics"
	"github.com/tomtom215/homeshelf/internal/models"
)

const (
	// MaxResults caps the number of items a section returns.
	MaxResults = 20

	// DefaultFetchLimit bounds the file-level catalog query.
	DefaultFetchLimit = 10000
)

// Catalog is the read-only view of the media library.
type Catalog interface {
	// ResolveUser returns (nil, nil) when the user does not exist.
	ResolveUser(ctx context.Context, userID string) (*models.UserRef, error)

	// FindItems returns the file-level items matching the query with their
	// parent chain populated.
	FindItems(ctx context.Context, query models.ItemQuery) ([]*models.CatalogItem, error)

	// ToProjection builds the caller-facing view of one item.
	ToProjection(ctx context.Context, item *models.CatalogItem, opts models.ProjectionOptions, user *models.UserRef) (*models.ItemProjection, error)
}

// ProfileSource looks up section profiles by ID.
type ProfileSource interface {
	Find(id string) (models.SectionProfile, bool)
}

// Option configures an Engine.
type Option func(*Engine)

// WithFetchLimit overrides the file-level query limit.
func WithFetchLimit(limit int) Option {
	return func(e *Engine) {
		if limit > 0 {
			e.fetchLimit = limit
		}
	}
}

// WithProjectionOptions overrides the projected fields.
func WithProjectionOptions(opts models.ProjectionOptions) Option {
	return func(e *Engine) {
		e.projection = opts
	}
}

// WithShuffler replaces the random ordering used by SortRandom.
func WithShuffler(s Shuffler) Option {
	return func(e *Engine) {
		if s != nil {
			e.shuffle = s
		}
	}
}

// Engine computes section results. It holds no per-call state and is safe
// for concurrent use.
type Engine struct {
	catalog    Catalog
	profiles   ProfileSource
	fetchLimit int
	projection models.ProjectionOptions
	shuffle    Shuffler
}

// NewEngine creates an engine reading profiles from profiles and items
// from catalog.
func NewEngine(catalog Catalog, profiles ProfileSource, opts ...Option) *Engine {
	e := &Engine{
		catalog:    catalog,
		profiles:   profiles,
		fetchLimit: DefaultFetchLimit,
		projection: models.DefaultProjectionOptions(),
		shuffle:    randomShuffle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Filter returns the section result for the given user and profile.
func (e *Engine) Filter(ctx context.Context, userID, profileID string) models.QueryResult {
	start := time.Now()
	log := logging.ForSection(ctx, profileID)

	profile, ok := e.profiles.Find(profileID)
	if !ok {
		log.Warn().Msg("Section not configured")
		metrics.RecordFilter(metrics.OutcomeUnknownSection, time.Since(start))
		return models.EmptyResult()
	}
	log = log.With().Str("section_name", profile.DisplayName).Logger()

	user, err := e.catalog.ResolveUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to resolve user")
		metrics.RecordFilter(metrics.OutcomeUpstreamError, time.Since(start))
		return models.EmptyResult()
	}
	if user == nil {
		log.Warn().Str("user_id", userID).Msg("User not found")
		metrics.RecordFilter(metrics.OutcomeUnknownUser, time.Since(start))
		return models.EmptyResult()
	}

	kinds := profile.FileKinds()
	if len(kinds) == 0 {
		log.Warn().Msg("Section has no content kinds selected")
		metrics.RecordFilter(metrics.OutcomeEmptySelection, time.Since(start))
		return models.EmptyResult()
	}

	log.Debug().
		Interface("kinds", kinds).
		Str("sort_by", string(profile.SortBy)).
		Bool("descending", profile.SortDescending).
		Msg("Querying catalog")

	files, err := e.catalog.FindItems(ctx, models.ItemQuery{
		Kinds:       kinds,
		Recursive:   true,
		Limit:       e.fetchLimit,
		User:        user,
		MinimalData: true,
	})
	if err != nil {
		log.Error().Err(err).Msg("Catalog query failed")
		metrics.RecordFilter(metrics.OutcomeUpstreamError, time.Since(start))
		return models.EmptyResult()
	}
	log.Debug().Int("files", len(files)).Dur("elapsed", time.Since(start)).Msg("Catalog query complete")

	withContent := filterBySize(files)
	reps, orphans := collapse(withContent)
	metrics.RecordFilterPhase(len(files), len(files)-len(withContent), orphans, len(reps))
	log.Debug().
		Int("with_content", len(withContent)).
		Int("representatives", len(reps)).
		Int("orphans", orphans).
		Msg("Collapsed files to representatives")

	sortItems(reps, profile.SortBy, profile.SortDescending, e.shuffle)
	if len(reps) > MaxResults {
		reps = reps[:MaxResults]
	}

	items := make([]models.ItemProjection, 0, len(reps))
	for _, item := range reps {
		dto, err := e.catalog.ToProjection(ctx, item, e.projection, user)
		if err != nil || dto == nil {
			log.Warn().Err(err).Str("item_id", item.ID).Str("item_name", item.Name).Msg("Failed to project item, skipping")
			metrics.FilterProjectionFailures.Inc()
			continue
		}
		items = append(items, *dto)
	}

	elapsed := time.Since(start)
	metrics.RecordFilter(metrics.OutcomeOK, elapsed)
	log.Info().
		Int("files", len(files)).
		Int("returned", len(items)).
		Dur("elapsed", elapsed).
		Msg("Section filtered")

	return models.NewQueryResult(items)
}
