// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package api

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/homeshelf/internal/logging"
	"github.com/tomtom215/homeshelf/internal/metrics"
	"github.com/tomtom215/homeshelf/internal/models"
)

// maxPayloadBytes bounds the results request body.
const maxPayloadBytes = 64 << 10

// SectionResults handles the home-screen plugin's results call.
//
// @Summary Get section results
// @Description Returns the items of one section for one user. Always 200; failures yield an empty result.
// @Tags Sections
// @Accept json
// @Produce json
// @Param payload body models.SectionPayload true "User and section IDs"
// @Success 200 {object} models.QueryResult
// @Router /sections/results [post]
func (h *Handler) SectionResults(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes+1))
	if err != nil || len(body) > maxPayloadBytes {
		h.rejectPayload(w, r, start, "unreadable or oversized body")
		return
	}

	var payload models.SectionPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		h.rejectPayload(w, r, start, "malformed JSON")
		return
	}

	respondQueryResult(w, h.results.GetResults(r.Context(), payload))
}

// SectionResultsByID is the query-string form of SectionResults.
//
// @Summary Get section results by path
// @Tags Sections
// @Produce json
// @Param id path string true "Section ID"
// @Param userId query string true "Jellyfin user ID"
// @Success 200 {object} models.QueryResult
// @Router /sections/{id}/results [get]
func (h *Handler) SectionResultsByID(w http.ResponseWriter, r *http.Request) {
	payload := models.SectionPayload{
		UserID:         r.URL.Query().Get("userId"),
		AdditionalData: chi.URLParam(r, "id"),
	}
	respondQueryResult(w, h.results.GetResults(r.Context(), payload))
}

func (h *Handler) rejectPayload(w http.ResponseWriter, r *http.Request, start time.Time, reason string) {
	logging.Ctx(r.Context()).Warn().
		Str("reason", reason).
		Str("remote_addr", r.RemoteAddr).
		Msg("Invalid section request")
	metrics.RecordFilter(metrics.OutcomeInvalidPayload, time.Since(start))
	respondQueryResult(w, models.EmptyResult())
}

// ListSections returns every configured section profile in order.
//
// @Summary List sections
// @Tags Sections
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.SectionProfile}
// @Router /sections [get]
func (h *Handler) ListSections(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, h.sections.List(), start)
}

// GetSection returns one section profile.
//
// @Summary Get section
// @Tags Sections
// @Produce json
// @Param id path string true "Section ID"
// @Success 200 {object} models.APIResponse{data=models.SectionProfile}
// @Failure 404 {object} models.APIResponse "Section not found"
// @Router /sections/{id} [get]
func (h *Handler) GetSection(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	profile, ok := h.findSection(w, r)
	if !ok {
		return
	}
	respondSuccess(w, profile, start)
}

// SectionDescriptor returns the registration payload sent to the
// home-screen plugin for one section.
//
// @Summary Get section descriptor
// @Description Shows the payload registered with the Home Screen Sections plugin.
// @Tags Sections
// @Produce json
// @Param id path string true "Section ID"
// @Success 200 {object} models.APIResponse{data=models.SectionDescriptor}
// @Failure 404 {object} models.APIResponse "Section not found"
// @Failure 503 {object} models.APIResponse "Registration disabled"
// @Router /sections/{id}/descriptor [get]
func (h *Handler) SectionDescriptor(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.registrar == nil {
		respondError(w, http.StatusServiceUnavailable, "REGISTRATION_DISABLED", ErrRegistrationDisabled.Error(), nil)
		return
	}
	profile, ok := h.findSection(w, r)
	if !ok {
		return
	}
	respondSuccess(w, h.registrar.BuildDescriptor(&profile), start)
}

// RegisterSections re-registers every section with the plugin now.
//
// @Summary Register sections
// @Description Re-runs plugin registration without the startup delay.
// @Tags Sections
// @Produce json
// @Success 200 {object} models.APIResponse{data=homescreen.RegistrationReport}
// @Failure 503 {object} models.APIResponse "Plugin unavailable or registration disabled"
// @Router /sections/register [post]
func (h *Handler) RegisterSections(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if h.registrar == nil {
		respondError(w, http.StatusServiceUnavailable, "REGISTRATION_DISABLED", ErrRegistrationDisabled.Error(), nil)
		return
	}

	report := h.registrar.RegisterNow(r.Context())
	if report.Skipped {
		respondError(w, http.StatusServiceUnavailable, "SURFACE_UNAVAILABLE", "Home screen plugin unavailable: "+report.Reason, nil)
		return
	}
	respondSuccess(w, report, start)
}

func (h *Handler) findSection(w http.ResponseWriter, r *http.Request) (models.SectionProfile, bool) {
	id := chi.URLParam(r, "id")
	profile, ok := h.sections.Find(id)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", ErrSectionNotFound.Error()+": "+sanitizeLogValue(id), nil)
		return models.SectionProfile{}, false
	}
	return profile, true
}
