// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

// Package homescreen connects Homeshelf to the Jellyfin home screen.
//
// Handler is the entry point the Home Screen Sections plugin calls for
// section results. Registrar announces every configured section to the
// plugin at startup and after configuration reloads.
package homescreen

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/homeshelf/internal/logging"
	"github.com/tomtom215/homeshelf/internal/metrics"
	"github.com/tomtom215/homeshelf/internal/models"
	"github.com/tomtom215/homeshelf/internal/validation"
)

// Filterer computes section results.
type Filterer interface {
	Filter(ctx context.Context, userID, profileID string) models.QueryResult
}

// Handler validates section requests and delegates to the filter. It never
// returns an error: every failure becomes an empty result.
type Handler struct {
	filter Filterer
}

// NewHandler creates a Handler.
func NewHandler(filter Filterer) *Handler {
	return &Handler{filter: filter}
}

// GetResults returns the items for payload.AdditionalData (the section ID)
// as seen by payload.UserID.
func (h *Handler) GetResults(ctx context.Context, payload models.SectionPayload) (result models.QueryResult) {
	start := time.Now()
	log := logging.ForSection(ctx, payload.AdditionalData)

	if verr := validation.ValidateStruct(&payload); verr != nil {
		log.Warn().Str("user_id", payload.UserID).Str("reason", verr.Error()).Msg("Invalid section request")
		metrics.RecordFilter(metrics.OutcomeInvalidPayload, time.Since(start))
		return models.EmptyResult()
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Err(fmt.Errorf("panic: %v", r)).
				Str("user_id", payload.UserID).
				Msg("Recovered from panic while filtering section")
			metrics.RecordFilter(metrics.OutcomeRecoveredPanic, time.Since(start))
			result = models.EmptyResult()
		}
	}()

	result = h.filter.Filter(ctx, payload.UserID, payload.AdditionalData)
	if result.Items == nil {
		result = models.NewQueryResult(nil)
	}
	return result
}
