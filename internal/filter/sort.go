// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package filter

import (
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/tomtom215/homeshelf/internal/models"
)

// Shuffler permutes items in place.
type Shuffler func(items []*models.CatalogItem)

func randomShuffle(items []*models.CatalogItem) {
	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// sortItems orders items by key. The sort is stable in both directions:
// descending reverses the comparator, so items with equal keys keep their
// input order. Random ignores direction.
func sortItems(items []*models.CatalogItem, key models.SortKey, descending bool, shuffle Shuffler) {
	if key == models.SortRandom {
		shuffle(items)
		return
	}

	cmp := comparator(key)
	if descending {
		asc := cmp
		cmp = func(a, b *models.CatalogItem) int { return asc(b, a) }
	}
	slices.SortStableFunc(items, cmp)
}

func comparator(key models.SortKey) func(a, b *models.CatalogItem) int {
	switch key {
	case models.SortName:
		return func(a, b *models.CatalogItem) int {
			return strings.Compare(a.SortName, b.SortName)
		}
	case models.SortDatePlayed:
		return func(a, b *models.CatalogItem) int {
			return timeOrZero(a.DateLastSaved).Compare(timeOrZero(b.DateLastSaved))
		}
	case models.SortPremiereDate:
		return func(a, b *models.CatalogItem) int {
			return timeOrZero(a.PremiereDate).Compare(timeOrZero(b.PremiereDate))
		}
	default:
		return func(a, b *models.CatalogItem) int {
			return a.DateCreated.Compare(b.DateCreated)
		}
	}
}

// timeOrZero treats a missing date as the earliest possible value.
func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
