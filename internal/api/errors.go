// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package api

import "errors"

// Common API errors
var (
	// ErrRegistrationDisabled indicates registration is turned off in config.
	ErrRegistrationDisabled = errors.New("section registration is disabled")

	// ErrSectionNotFound indicates no profile has the requested ID.
	ErrSectionNotFound = errors.New("section not found")
)
