// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package jellyfin

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tomtom215/homeshelf/internal/logging"
)

// Route style overrides accepted by DetectCatalog.
const (
	APIVersionAuto   = "auto"
	APIVersionLegacy = "legacy"
	APIVersionModern = "modern"
)

// modernMajor and modernMinor mark the first release with /Items?userId=.
const (
	modernMajor = 10
	modernMinor = 9
)

// DetectCatalog chooses the catalog route style once at startup. An
// override of "legacy" or "modern" skips detection; otherwise the server
// version from /System/Info decides.
func DetectCatalog(ctx context.Context, api API, override string) (*Catalog, error) {
	switch strings.ToLower(strings.TrimSpace(override)) {
	case APIVersionLegacy:
		logging.Info().Str("routes", "legacy").Msg("Jellyfin route style set by configuration")
		return NewLegacyCatalog(api), nil
	case APIVersionModern:
		logging.Info().Str("routes", "modern").Msg("Jellyfin route style set by configuration")
		return NewModernCatalog(api), nil
	case "", APIVersionAuto:
	default:
		return nil, fmt.Errorf("unknown jellyfin api version %q", override)
	}

	info, err := api.GetSystemInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("detect jellyfin version: %w", err)
	}

	style := StyleForVersion(info.Version)
	logging.Info().
		Str("server", info.ServerName).
		Str("version", info.Version).
		Str("routes", style.String()).
		Msg("Detected Jellyfin server")

	if style == RoutesLegacy {
		return NewLegacyCatalog(api), nil
	}
	return NewModernCatalog(api), nil
}

// StyleForVersion maps a server version such as "10.8.13" to a route
// style. Unparseable versions are assumed modern.
func StyleForVersion(version string) RouteStyle {
	major, minor, ok := parseMajorMinor(version)
	if !ok {
		return RoutesModern
	}
	if major < modernMajor || (major == modernMajor && minor < modernMinor) {
		return RoutesLegacy
	}
	return RoutesModern
}

func parseMajorMinor(version string) (major, minor int, ok bool) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return 0, 0, false
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}
