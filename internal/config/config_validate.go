// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tomtom215/homeshelf/internal/jellyfin"
	"github.com/tomtom215/homeshelf/internal/models"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateJellyfin(); err != nil {
		return err
	}

	if err := c.validateRegistration(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateFilter(); err != nil {
		return err
	}

	return c.validateSections()
}

// validateJellyfin validates the Jellyfin connection settings
func (c *Config) validateJellyfin() error {
	if err := c.validateJellyfinURL(); err != nil {
		return err
	}
	if err := c.validateJellyfinAPIKey(); err != nil {
		return err
	}
	if err := c.validateJellyfinAPIVersion(); err != nil {
		return err
	}
	if c.Jellyfin.RequestsPerSecond < 0 {
		return fmt.Errorf("JELLYFIN_REQUESTS_PER_SECOND must not be negative")
	}
	return nil
}

// validateJellyfinURL validates the Jellyfin URL
func (c *Config) validateJellyfinURL() error {
	if c.Jellyfin.URL == "" {
		return fmt.Errorf("JELLYFIN_URL is required")
	}
	return validateHTTPURL("JELLYFIN_URL", c.Jellyfin.URL)
}

// validateJellyfinAPIKey validates the Jellyfin API key
func (c *Config) validateJellyfinAPIKey() error {
	if c.Jellyfin.APIKey == "" {
		return fmt.Errorf("JELLYFIN_API_KEY is required")
	}
	if containsPlaceholder(c.Jellyfin.APIKey) {
		return fmt.Errorf("JELLYFIN_API_KEY appears to be a placeholder value")
	}
	return nil
}

// validateJellyfinAPIVersion validates the route style override
func (c *Config) validateJellyfinAPIVersion() error {
	switch strings.ToLower(strings.TrimSpace(c.Jellyfin.APIVersion)) {
	case "", jellyfin.APIVersionAuto, jellyfin.APIVersionLegacy, jellyfin.APIVersionModern:
		return nil
	}
	return fmt.Errorf("JELLYFIN_API_VERSION must be one of: auto, legacy, modern (got %q)", c.Jellyfin.APIVersion)
}

// validateRegistration validates plugin registration settings
func (c *Config) validateRegistration() error {
	if !c.Registration.Enabled {
		return nil
	}
	if !strings.HasPrefix(c.Registration.Path, "/") {
		return fmt.Errorf("REGISTRATION_PATH must start with '/' (got %q)", c.Registration.Path)
	}
	if c.Registration.Delay < 0 {
		return fmt.Errorf("REGISTRATION_DELAY must not be negative")
	}
	if c.Registration.PublicURL != "" {
		return validateHTTPURL("PUBLIC_URL", c.Registration.PublicURL)
	}
	return nil
}

// validateServer validates HTTP server settings
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	return nil
}

// validateSecurity validates CORS and rate limit settings
func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	return c.validateRateLimits()
}

// validateRateLimits validates rate limiting configuration
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s")
	}
	return nil
}

// HasWildcardCORS reports whether any allowed origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// validateFilter validates engine tuning
func (c *Config) validateFilter() error {
	if c.Filter.FetchLimit < 1 {
		return fmt.Errorf("FILTER_FETCH_LIMIT must be at least 1")
	}
	return nil
}

// validateSections checks section ids and sort keys. Empty ids are allowed
// and receive a generated id when loaded into the store.
func (c *Config) validateSections() error {
	seen := make(map[string]int, len(c.Sections))
	for i, s := range c.Sections {
		id := strings.ToLower(strings.TrimSpace(s.ID))
		if id != "" {
			if prev, dup := seen[id]; dup {
				return fmt.Errorf("sections[%d]: id %q duplicates sections[%d]", i, s.ID, prev)
			}
			seen[id] = i
		}
		if _, ok := models.ParseSortKey(s.SortBy); !ok {
			return fmt.Errorf("sections[%d]: sort_by %q is not one of %v", i, s.SortBy, models.SortKeys)
		}
	}
	return nil
}

func validateHTTPURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https (got %q)", name, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must include a host (got %q)", name, raw)
	}
	return nil
}

// placeholderPatterns defines common placeholder patterns that indicate
// the user forgot to set a real value.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_API_KEY",
	"PLACEHOLDER",
}

// containsPlaceholder checks if a value contains common placeholder patterns
func containsPlaceholder(value string) bool {
	upperValue := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upperValue, pattern) {
			return true
		}
	}
	return false
}
