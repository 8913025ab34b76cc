// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package filter

import (
	"github.com/tomtom215/homeshelf/internal/models"
)

// filterBySize keeps files with a positive size, preserving order.
func filterBySize(files []*models.CatalogItem) []*models.CatalogItem {
	out := make([]*models.CatalogItem, 0, len(files))
	for _, f := range files {
		if f.HasContent() {
			out = append(out, f)
		}
	}
	return out
}

// Representative returns the item that stands for file on the home screen:
// a movie is itself, an episode is its series (or its immediate parent when
// the grandparent is not a series), an audio track is its album. Other
// kinds have no representative.
func Representative(file *models.CatalogItem) *models.CatalogItem {
	if file == nil {
		return nil
	}
	switch file.Kind {
	case models.KindMovie:
		return file
	case models.KindEpisode:
		parent := file.Parent
		if parent == nil {
			return nil
		}
		if grand := parent.Parent; grand != nil && grand.Kind == models.KindSeries {
			return grand
		}
		return parent
	case models.KindAudio:
		return file.Parent
	default:
		return nil
	}
}

// collapse maps files to representatives, keeping the first occurrence of
// each representative ID in input order. It also returns the number of
// files that had no representative.
func collapse(files []*models.CatalogItem) (reps []*models.CatalogItem, orphans int) {
	seen := make(map[string]struct{}, len(files))
	reps = make([]*models.CatalogItem, 0, len(files))
	for _, f := range files {
		rep := Representative(f)
		if rep == nil {
			orphans++
			continue
		}
		if _, dup := seen[rep.ID]; dup {
			continue
		}
		seen[rep.ID] = struct{}{}
		reps = append(reps, rep)
	}
	return reps, orphans
}
