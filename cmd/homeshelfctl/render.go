// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tomtom215/homeshelf/internal/models"
)

// ticksPerSecond is Jellyfin's RunTimeTicks resolution (100ns).
const ticksPerSecond = 10_000_000

// now is replaced in tests.
var now = time.Now

func renderProfiles(profiles []models.SectionProfile) string {
	rows := make([][]string, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			p.ID,
			p.DisplayName,
			kindsLabel(p),
			sortLabel(p),
		})
	}
	return renderTable(
		[]string{"#", "ID", "Name", "Kinds", "Sort"},
		rows,
		[]columnAlignment{alignRight},
	)
}

func renderItems(items []models.ItemProjection) string {
	rows := make([][]string, 0, len(items))
	for i := range items {
		item := &items[i]
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			itemTitle(item),
			item.Type,
			yearLabel(item.ProductionYear),
			runtimeLabel(item.RunTimeTicks),
			relativeTime(item.DateCreated),
			playedLabel(item.UserData),
		})
	}
	return renderTable(
		[]string{"#", "Title", "Type", "Year", "Runtime", "Added", "Played"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight},
	)
}

func kindsLabel(p *models.SectionProfile) string {
	var kinds []string
	if p.IncludeMovies {
		kinds = append(kinds, "movies")
	}
	if p.IncludeSeries {
		kinds = append(kinds, "series")
	}
	if p.IncludeMusic {
		kinds = append(kinds, "music")
	}
	if len(kinds) == 0 {
		return "none"
	}
	return strings.Join(kinds, ", ")
}

func sortLabel(p *models.SectionProfile) string {
	if p.SortBy == models.SortRandom {
		return string(p.SortBy)
	}
	if p.SortDescending {
		return string(p.SortBy) + " desc"
	}
	return string(p.SortBy) + " asc"
}

func itemTitle(item *models.ItemProjection) string {
	switch {
	case item.SeriesName != "" && item.SeriesName != item.Name:
		return item.SeriesName + ": " + item.Name
	case item.AlbumArtist != "":
		return item.AlbumArtist + " - " + item.Name
	default:
		return item.Name
	}
}

func yearLabel(year int) string {
	if year <= 0 {
		return "-"
	}
	return strconv.Itoa(year)
}

func runtimeLabel(ticks int64) string {
	if ticks <= 0 {
		return "-"
	}
	d := time.Duration(ticks/ticksPerSecond) * time.Second
	return d.Truncate(time.Minute).String()
}

func relativeTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return humanize.RelTime(*t, now(), "ago", "from now")
}

func playedLabel(data *models.UserItemData) string {
	switch {
	case data == nil:
		return "-"
	case data.Played && data.PlayCount > 1:
		return humanize.Comma(int64(data.PlayCount)) + " times"
	case data.Played:
		return "yes"
	default:
		return "no"
	}
}
