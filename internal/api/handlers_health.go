// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/homeshelf/internal/models"
)

// readinessTimeout bounds the Jellyfin ping behind the readiness probe.
const readinessTimeout = 5 * time.Second

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":   true,
			"version": h.version,
			"uptime":  time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if Jellyfin answers, 503 otherwise.
//
// @Summary Kubernetes readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	jellyfinConnected := h.jellyfin != nil && h.jellyfin.Ping(ctx) == nil

	status := http.StatusOK
	state := "success"
	if !jellyfinConnected {
		status = http.StatusServiceUnavailable
		state = "error"
	}

	response := &models.APIResponse{
		Status: state,
		Data: map[string]interface{}{
			"ready":              jellyfinConnected,
			"jellyfin_connected": jellyfinConnected,
			"sections":           len(h.sections.List()),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	}
	if !jellyfinConnected {
		response.Error = &models.APIError{
			Code:    "JELLYFIN_UNAVAILABLE",
			Message: "Jellyfin server is not reachable",
		}
	}
	respondJSON(w, status, response)
}
