// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package filter

import (
	"testing"
	"time"

	"github.com/tomtom215/homeshelf/internal/models"
)

func named(id, sortName string) *models.CatalogItem {
	return &models.CatalogItem{ID: id, Name: sortName, SortName: sortName}
}

func noShuffle([]*models.CatalogItem) {}

func TestSortByNameStable(t *testing.T) {
	tests := []struct {
		name       string
		descending bool
		want       []string
	}{
		{"ascending", false, []string{"a1", "a2", "b", "c"}},
		{"descending", true, []string{"c", "b", "a1", "a2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []*models.CatalogItem{named("c", "charlie"), named("a1", "alpha"), named("b", "bravo"), named("a2", "alpha")}
			sortItems(items, models.SortName, tt.descending, noShuffle)
			checkIDs(t, itemIDs(items), tt.want)
		})
	}
}

func TestSortByNameIsOrdinal(t *testing.T) {
	items := []*models.CatalogItem{named("lower", "apple"), named("upper", "Banana")}
	sortItems(items, models.SortName, false, noShuffle)
	checkIDs(t, itemIDs(items), []string{"upper", "lower"})
}

func TestSortNilDatesAreEarliest(t *testing.T) {
	played := &models.CatalogItem{ID: "played", DateLastSaved: timePtr(baseTime)}
	never := &models.CatalogItem{ID: "never"}
	recent := &models.CatalogItem{ID: "recent", DateLastSaved: timePtr(baseTime.Add(time.Hour))}

	items := []*models.CatalogItem{played, never, recent}
	sortItems(items, models.SortDatePlayed, true, noShuffle)
	checkIDs(t, itemIDs(items), []string{"recent", "played", "never"})

	items = []*models.CatalogItem{played, never, recent}
	sortItems(items, models.SortDatePlayed, false, noShuffle)
	checkIDs(t, itemIDs(items), []string{"never", "played", "recent"})
}

func TestSortByPremiereDate(t *testing.T) {
	old := &models.CatalogItem{ID: "old", PremiereDate: timePtr(time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC))}
	unknown := &models.CatalogItem{ID: "unknown"}
	newer := &models.CatalogItem{ID: "newer", PremiereDate: timePtr(time.Date(2021, 12, 22, 0, 0, 0, 0, time.UTC))}

	items := []*models.CatalogItem{unknown, newer, old}
	sortItems(items, models.SortPremiereDate, true, noShuffle)
	checkIDs(t, itemIDs(items), []string{"newer", "old", "unknown"})
}

func TestSortDefaultsToDateCreated(t *testing.T) {
	a := &models.CatalogItem{ID: "a", DateCreated: baseTime}
	b := &models.CatalogItem{ID: "b", DateCreated: baseTime.Add(time.Minute)}

	items := []*models.CatalogItem{a, b}
	sortItems(items, models.SortKey("whatever"), true, noShuffle)
	checkIDs(t, itemIDs(items), []string{"b", "a"})
}

func TestSortRandomIgnoresDirection(t *testing.T) {
	calls := 0
	counting := func([]*models.CatalogItem) { calls++ }
	items := []*models.CatalogItem{named("a", "a"), named("b", "b")}

	sortItems(items, models.SortRandom, true, counting)
	sortItems(items, models.SortRandom, false, counting)

	checkIntEqual(t, "shuffle calls", calls, 2)
}

func TestRandomShufflePreservesMembers(t *testing.T) {
	items := []*models.CatalogItem{named("a", "a"), named("b", "b"), named("c", "c"), named("d", "d")}
	randomShuffle(items)

	seen := map[string]bool{}
	for _, it := range items {
		seen[it.ID] = true
	}
	checkIntEqual(t, "distinct items", len(seen), 4)
}
