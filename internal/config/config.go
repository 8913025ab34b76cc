// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/homeshelf/internal/models"
)

// Config holds all application configuration loaded from defaults, the
// optional YAML file and environment variables.
//
// Config is immutable after loading and safe for concurrent reads. A reload
// produces a new Config value.
type Config struct {
	Jellyfin     JellyfinConfig     `koanf:"jellyfin"`
	Registration RegistrationConfig `koanf:"registration"`
	Server       ServerConfig       `koanf:"server"`
	Security     SecurityConfig     `koanf:"security"`
	Logging      LoggingConfig      `koanf:"logging"`
	Filter       FilterConfig       `koanf:"filter"`
	Sections     []SectionConfig    `koanf:"sections"`
}

// JellyfinConfig holds the connection to the Jellyfin server whose catalog
// is filtered.
//
// Environment Variables:
//   - JELLYFIN_URL: Server URL (required)
//   - JELLYFIN_API_KEY: API key from Dashboard > API Keys (required)
//   - JELLYFIN_API_VERSION: auto, legacy or modern (default: auto)
//   - JELLYFIN_TIMEOUT: HTTP timeout (default: 30s)
//   - JELLYFIN_REQUESTS_PER_SECOND: client-side rate limit, 0 disables (default: 20)
type JellyfinConfig struct {
	URL               string        `koanf:"url"`
	APIKey            string        `koanf:"api_key"`
	APIVersion        string        `koanf:"api_version"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
}

// RegistrationConfig controls how sections are announced to the Home Screen
// Sections plugin.
type RegistrationConfig struct {
	// Enabled turns startup and reload registration on.
	Enabled bool `koanf:"enabled"`

	// Delay before the first registration attempt so the plugin can finish
	// loading. Default: 2s
	Delay time.Duration `koanf:"delay"`

	// Path is the plugin's registration endpoint on the Jellyfin server.
	Path string `koanf:"path"`

	// PluginName is matched against /Plugins to decide availability.
	PluginName string `koanf:"plugin_name"`

	// Route is the client route used for sections without their own.
	Route string `koanf:"route"`

	// PublicURL is the base URL at which Jellyfin reaches this service.
	// Empty leaves the results endpoint relative.
	PublicURL string `koanf:"public_url"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds CORS and rate limiting settings for the HTTP API.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// FilterConfig tunes the filtering engine.
type FilterConfig struct {
	// FetchLimit caps the single catalog query per filter call.
	// Default: 10000
	FetchLimit int `koanf:"fetch_limit"`
}

// SectionConfig is one section profile as written in the config file.
// Pointer fields distinguish "unset" from false so omitted flags take the
// profile defaults.
type SectionConfig struct {
	ID                   string   `koanf:"id"`
	DisplayName          string   `koanf:"display_name"`
	ExcludedLibraryNames []string `koanf:"excluded_library_names"`
	IncludeMovies        *bool    `koanf:"include_movies"`
	IncludeSeries        *bool    `koanf:"include_series"`
	IncludeMusic         *bool    `koanf:"include_music"`
	SortBy               string   `koanf:"sort_by"`
	SortDescending       *bool    `koanf:"sort_descending"`
	Route                string   `koanf:"route"`
}

// ToProfile converts the entry to a section profile, filling unset fields
// with the profile defaults. Sort keys are matched case-insensitively;
// Validate rejects unknown keys before this is reached.
func (s SectionConfig) ToProfile() models.SectionProfile {
	p := models.NewSectionProfile(s.ID)
	if s.DisplayName != "" {
		p.DisplayName = s.DisplayName
	}
	if len(s.ExcludedLibraryNames) > 0 {
		p.ExcludedLibraryNames = append([]string(nil), s.ExcludedLibraryNames...)
	}
	if s.IncludeMovies != nil {
		p.IncludeMovies = *s.IncludeMovies
	}
	if s.IncludeSeries != nil {
		p.IncludeSeries = *s.IncludeSeries
	}
	if s.IncludeMusic != nil {
		p.IncludeMusic = *s.IncludeMusic
	}
	if key, ok := models.ParseSortKey(s.SortBy); ok {
		p.SortBy = key
	}
	if s.SortDescending != nil {
		p.SortDescending = *s.SortDescending
	}
	p.Route = s.Route
	return p
}

// Profiles converts every configured section in file order.
func (c *Config) Profiles() []models.SectionProfile {
	profiles := make([]models.SectionProfile, 0, len(c.Sections))
	for _, s := range c.Sections {
		profiles = append(profiles, s.ToProfile())
	}
	return profiles
}
