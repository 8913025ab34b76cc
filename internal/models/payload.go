// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package models

// SectionPayload is the request envelope sent by the home-screen plugin.
// AdditionalData carries the section profile ID set at registration.
type SectionPayload struct {
	UserID         string `json:"UserId" validate:"required,jellyfin_id"`
	AdditionalData string `json:"AdditionalData" validate:"required"`
}
