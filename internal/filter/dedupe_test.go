// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package filter

import (
	"testing"

	"github.com/tomtom215/homeshelf/internal/models"
)

func TestRepresentative(t *testing.T) {
	show := series("S")
	seasonOfShow := season("S1", show)
	looseFolder := &models.CatalogItem{ID: "F", Kind: models.KindFolder}
	seasonInFolder := season("S2", looseFolder)
	al := album("AL")

	tests := []struct {
		name string
		file *models.CatalogItem
		want string
	}{
		{"movie is itself", movie("M", 1, baseTime), "M"},
		{"episode under season under series", episode("E1", 1, seasonOfShow), "S"},
		{"episode directly under series", episode("E2", 1, show), "S"},
		{"episode with non-series grandparent", episode("E3", 1, seasonInFolder), "S2"},
		{"episode with no grandparent", episode("E4", 1, season("S3", nil)), "S3"},
		{"audio uses album", track("T1", 1, al), "AL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Representative(tt.file)
			if got == nil {
				t.Fatalf("Representative() = nil, want %s", tt.want)
			}
			if got.ID != tt.want {
				t.Errorf("Representative() = %s, want %s", got.ID, tt.want)
			}
		})
	}
}

func TestRepresentativeMissing(t *testing.T) {
	tests := []struct {
		name string
		file *models.CatalogItem
	}{
		{"nil file", nil},
		{"orphan episode", episode("E", 1, nil)},
		{"orphan track", track("T", 1, nil)},
		{"folder", &models.CatalogItem{ID: "F", Kind: models.KindFolder}},
	}
	for _, tt := range tests {
		if got := Representative(tt.file); got != nil {
			t.Errorf("%s: Representative() = %s, want nil", tt.name, got.ID)
		}
	}
}

func TestCollapseFirstSeenWins(t *testing.T) {
	show := series("S")
	files := []*models.CatalogItem{
		movie("M1", 1, baseTime),
		episode("E1", 1, season("S1", show)),
		movie("M2", 1, baseTime),
		episode("E2", 1, season("S1", show)),
		episode("E3", 1, nil),
	}

	reps, orphans := collapse(files)

	checkIDs(t, itemIDs(reps), []string{"M1", "S", "M2"})
	checkIntEqual(t, "orphans", orphans, 1)
}

func TestCollapseManyEpisodesOneSeries(t *testing.T) {
	show := series("S")
	s1 := season("S1", show)
	var files []*models.CatalogItem
	for i := 0; i < 50; i++ {
		files = append(files, episode("E", 1, s1))
	}

	reps, _ := collapse(files)

	checkIDs(t, itemIDs(reps), []string{"S"})
}

func TestFilterBySize(t *testing.T) {
	show := series("S")
	files := []*models.CatalogItem{
		episode("zero", 0, season("S1", show)),
		{ID: "nil", Kind: models.KindEpisode, Parent: season("S1", show)},
		movie("ok", 10, baseTime),
	}

	kept := filterBySize(files)
	checkIDs(t, itemIDs(kept), []string{"ok"})

	reps, _ := collapse(kept)
	for _, r := range reps {
		if r.ID == "S" {
			t.Error("series reached only through unsized files must not appear")
		}
	}
}
