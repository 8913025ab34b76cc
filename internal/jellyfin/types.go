// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package jellyfin

import (
	"time"

	"github.com/tomtom215/homeshelf/internal/models"
)

// SystemInfo is the subset of /System/Info used for capability detection.
type SystemInfo struct {
	ServerName      string `json:"ServerName"`
	Version         string `json:"Version"`
	ID              string `json:"Id"`
	OperatingSystem string `json:"OperatingSystem"`
}

// User is a Jellyfin user.
type User struct {
	ID   string `json:"Id"`
	Name string `json:"Name"`
}

// PluginInfo is one entry of /Plugins.
type PluginInfo struct {
	Name    string `json:"Name"`
	Version string `json:"Version"`
	ID      string `json:"Id"`
	Status  string `json:"Status"`
}

// Active reports whether Jellyfin has loaded the plugin.
func (p *PluginInfo) Active() bool {
	return p.Status == "" || p.Status == "Active"
}

// MediaSource is one playable version of an item.
type MediaSource struct {
	ID   string `json:"Id"`
	Path string `json:"Path,omitempty"`
	Size *int64 `json:"Size,omitempty"`
}

// UserData is the per-user state attached to an item.
type UserData struct {
	Played            bool       `json:"Played"`
	PlayCount         int        `json:"PlayCount"`
	IsFavorite        bool       `json:"IsFavorite"`
	LastPlayedDate    *time.Time `json:"LastPlayedDate,omitempty"`
	UnplayedItemCount int        `json:"UnplayedItemCount,omitempty"`
}

// BaseItem is Jellyfin's BaseItemDto, limited to the fields Homeshelf reads.
type BaseItem struct {
	ID                      string               `json:"Id"`
	Name                    string               `json:"Name"`
	Type                    string               `json:"Type"`
	ServerID                string               `json:"ServerId,omitempty"`
	SortName                string               `json:"SortName,omitempty"`
	ParentID                string               `json:"ParentId,omitempty"`
	SeriesID                string               `json:"SeriesId,omitempty"`
	SeasonID                string               `json:"SeasonId,omitempty"`
	AlbumID                 string               `json:"AlbumId,omitempty"`
	DateCreated             *time.Time           `json:"DateCreated,omitempty"`
	PremiereDate            *time.Time           `json:"PremiereDate,omitempty"`
	ProductionYear          int                  `json:"ProductionYear,omitempty"`
	Overview                string               `json:"Overview,omitempty"`
	Genres                  []string             `json:"Genres,omitempty"`
	PrimaryImageAspectRatio float64              `json:"PrimaryImageAspectRatio,omitempty"`
	ImageTags               map[string]string    `json:"ImageTags,omitempty"`
	BackdropImageTags       []string             `json:"BackdropImageTags,omitempty"`
	MediaSources            []MediaSource        `json:"MediaSources,omitempty"`
	MediaStreams            []models.MediaStream `json:"MediaStreams,omitempty"`
	SeriesName              string               `json:"SeriesName,omitempty"`
	AlbumArtist             string               `json:"AlbumArtist,omitempty"`
	RunTimeTicks            int64                `json:"RunTimeTicks,omitempty"`
	UserData                *UserData            `json:"UserData,omitempty"`
	CurrentProgram          *BaseItem            `json:"CurrentProgram,omitempty"`
}

// Size returns the size of the first media source, or nil when the item
// has no sized source.
func (b *BaseItem) Size() *int64 {
	for i := range b.MediaSources {
		if b.MediaSources[i].Size != nil {
			size := *b.MediaSources[i].Size
			return &size
		}
	}
	return nil
}

// ItemsResponse is the envelope of every /Items style query.
type ItemsResponse struct {
	Items            []BaseItem `json:"Items"`
	TotalRecordCount int        `json:"TotalRecordCount"`
	StartIndex       int        `json:"StartIndex"`
}
