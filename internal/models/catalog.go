// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package models

import (
	"time"
)

// ItemKind is a Jellyfin item type.
type ItemKind string

// Item kinds the filter distinguishes. Anything else maps to KindUnknown.
const (
	KindMovie      ItemKind = "Movie"
	KindEpisode    ItemKind = "Episode"
	KindAudio      ItemKind = "Audio"
	KindSeries     ItemKind = "Series"
	KindSeason     ItemKind = "Season"
	KindMusicAlbum ItemKind = "MusicAlbum"
	KindFolder     ItemKind = "Folder"
	KindUnknown    ItemKind = "Unknown"
)

// ParseItemKind maps a Jellyfin "Type" string to an ItemKind.
func ParseItemKind(s string) ItemKind {
	switch ItemKind(s) {
	case KindMovie, KindEpisode, KindAudio, KindSeries, KindSeason, KindMusicAlbum:
		return ItemKind(s)
	case KindFolder, "CollectionFolder", "UserView":
		return KindFolder
	default:
		return KindUnknown
	}
}

// CatalogItem is a catalog entry borrowed for the duration of one filter
// call. Parent is populated up to two levels for file items; ancestors
// shared by several files are the same pointer.
type CatalogItem struct {
	ID            string
	Name          string
	Kind          ItemKind
	Size          *int64
	SortName      string
	DateCreated   time.Time
	DateLastSaved *time.Time
	PremiereDate  *time.Time
	Parent        *CatalogItem
}

// HasContent reports whether the item has a positive on-disk size.
func (c *CatalogItem) HasContent() bool {
	return c != nil && c.Size != nil && *c.Size > 0
}

// UserRef identifies a resolved catalog user.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ItemQuery describes the file-level catalog query issued once per filter
// call.
type ItemQuery struct {
	Kinds       []ItemKind
	Recursive   bool
	Limit       int
	User        *UserRef
	MinimalData bool
}
