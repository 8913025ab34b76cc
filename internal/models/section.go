// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package models

import (
	"strings"
)

// Default values applied to a section profile when the configuration
// leaves a field unset.
const (
	DefaultDisplayName    = "Filtered Content"
	DefaultIncludeMovies  = true
	DefaultIncludeSeries  = true
	DefaultIncludeMusic   = false
	DefaultSortDescending = true
)

// SortKey selects how representative items are ordered.
type SortKey string

// Supported sort keys.
const (
	SortDateCreated  SortKey = "DateCreated"
	SortDatePlayed   SortKey = "DatePlayed"
	SortName         SortKey = "Name"
	SortPremiereDate SortKey = "PremiereDate"
	SortRandom       SortKey = "Random"
)

// SortKeys lists every supported key in documentation order.
var SortKeys = []SortKey{SortDateCreated, SortDatePlayed, SortName, SortPremiereDate, SortRandom}

// ParseSortKey matches s case-insensitively. Empty or unknown values
// resolve to SortDateCreated and ok is false for unknown values.
func ParseSortKey(s string) (key SortKey, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SortDateCreated, true
	}
	for _, k := range SortKeys {
		if strings.EqualFold(s, string(k)) {
			return k, true
		}
	}
	return SortDateCreated, false
}

// SectionProfile is one configured home-screen section.
//
// The include flags form the set of content kinds: movies, series and music.
// An empty set is legal and produces an empty section.
type SectionProfile struct {
	ID                   string   `json:"id"`
	DisplayName          string   `json:"display_name"`
	ExcludedLibraryNames []string `json:"excluded_library_names"`
	IncludeMovies        bool     `json:"include_movies"`
	IncludeSeries        bool     `json:"include_series"`
	IncludeMusic         bool     `json:"include_music"`
	SortBy               SortKey  `json:"sort_by"`
	SortDescending       bool     `json:"sort_descending"`
	Route                string   `json:"route,omitempty"`
}

// NewSectionProfile returns a profile with the default content kinds and
// ordering.
func NewSectionProfile(id string) SectionProfile {
	return SectionProfile{
		ID:                   id,
		DisplayName:          DefaultDisplayName,
		ExcludedLibraryNames: []string{},
		IncludeMovies:        DefaultIncludeMovies,
		IncludeSeries:        DefaultIncludeSeries,
		IncludeMusic:         DefaultIncludeMusic,
		SortBy:               SortDateCreated,
		SortDescending:       DefaultSortDescending,
	}
}

// FileKinds maps the selected content kinds to the file-level item kinds
// the catalog is queried for: movies to Movie, series to Episode, music
// to Audio.
func (p *SectionProfile) FileKinds() []ItemKind {
	kinds := make([]ItemKind, 0, 3)
	if p.IncludeMovies {
		kinds = append(kinds, KindMovie)
	}
	if p.IncludeSeries {
		kinds = append(kinds, KindEpisode)
	}
	if p.IncludeMusic {
		kinds = append(kinds, KindAudio)
	}
	return kinds
}

// Clone returns a deep copy.
func (p *SectionProfile) Clone() SectionProfile {
	c := *p
	c.ExcludedLibraryNames = append([]string(nil), p.ExcludedLibraryNames...)
	if c.ExcludedLibraryNames == nil {
		c.ExcludedLibraryNames = []string{}
	}
	return c
}

// SectionDescriptor is sent to the home-screen plugin to register one
// section. AdditionalData carries the profile ID back on every results call.
type SectionDescriptor struct {
	ID              string `json:"id"`
	DisplayText     string `json:"displayText"`
	Limit           int    `json:"limit"`
	Route           string `json:"route"`
	AdditionalData  string `json:"additionalData"`
	ResultsEndpoint string `json:"resultsEndpoint"`
}
