// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

// Package sections holds the configured home-screen section profiles.
//
// The Store is read on every results call and replaced wholesale when the
// configuration file changes. Readers always see a complete snapshot:
//
//	store := sections.NewStore(profiles)
//	profile, ok := store.Find(id)
//	store.Replace(reloaded)
package sections

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/tomtom215/homeshelf/internal/logging"
	"github.com/tomtom215/homeshelf/internal/models"
)

// Store is an ordered, read-mostly list of section profiles.
//
// Thread Safety:
//   - The profile slice is never mutated after it is installed
//   - Replace swaps the whole snapshot under the write lock
//   - List and Find return copies
type Store struct {
	mu       sync.RWMutex
	profiles []models.SectionProfile
	index    map[string]int
}

// NewStore creates a store holding the normalized profiles.
func NewStore(profiles []models.SectionProfile) *Store {
	s := &Store{}
	s.Replace(profiles)
	return s
}

// List returns the profiles in configuration order.
func (s *Store) List() []models.SectionProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SectionProfile, len(s.profiles))
	for i := range s.profiles {
		out[i] = s.profiles[i].Clone()
	}
	return out
}

// Find returns the profile with the given ID. IDs match case-insensitively
// so dashed GUIDs in either case resolve to the same profile.
func (s *Store) Find(id string) (models.SectionProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[normalizeID(id)]
	if !ok {
		return models.SectionProfile{}, false
	}
	return s.profiles[i].Clone(), true
}

// Len returns the number of profiles.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}

// Replace installs a new snapshot. Profiles are normalized; a profile whose
// ID repeats an earlier one is dropped.
func (s *Store) Replace(profiles []models.SectionProfile) {
	next := make([]models.SectionProfile, 0, len(profiles))
	index := make(map[string]int, len(profiles))

	for i := range profiles {
		p := Normalize(profiles[i])
		key := normalizeID(p.ID)
		if _, dup := index[key]; dup {
			logging.Warn().
				Str("section_id", p.ID).
				Str("display_name", p.DisplayName).
				Msg("Duplicate section id, keeping first occurrence")
			continue
		}
		index[key] = len(next)
		next = append(next, p)
	}

	s.mu.Lock()
	s.profiles = next
	s.index = index
	s.mu.Unlock()

	logging.Debug().Int("sections", len(next)).Msg("Section store updated")
}

// Normalize fills structural defaults: a generated ID, the default display
// name and the DateCreated sort key. Include flags are left as given.
func Normalize(p models.SectionProfile) models.SectionProfile {
	p = p.Clone()
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if strings.TrimSpace(p.DisplayName) == "" {
		p.DisplayName = models.DefaultDisplayName
	}
	key, ok := models.ParseSortKey(string(p.SortBy))
	if !ok {
		logging.Warn().
			Str("section_id", p.ID).
			Str("sort_by", string(p.SortBy)).
			Msg("Unknown sort key, using DateCreated")
	}
	p.SortBy = key
	return p
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
