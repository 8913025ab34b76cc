// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package models

import (
	"time"
)

// Projection field names requested from the catalog.
const (
	FieldPrimaryImageAspectRatio = "PrimaryImageAspectRatio"
	FieldOverview                = "Overview"
	FieldGenres                  = "Genres"
	FieldDateCreated             = "DateCreated"
	FieldMediaStreams            = "MediaStreams"
)

// ProjectionOptions controls which fields an ItemProjection carries.
type ProjectionOptions struct {
	Fields            []string
	EnableImages      bool
	AddCurrentProgram bool
}

// DefaultProjectionOptions returns the fields a home-screen card needs.
func DefaultProjectionOptions() ProjectionOptions {
	return ProjectionOptions{
		Fields: []string{
			FieldPrimaryImageAspectRatio,
			FieldOverview,
			FieldGenres,
			FieldDateCreated,
			FieldMediaStreams,
		},
		EnableImages:      true,
		AddCurrentProgram: true,
	}
}

// ItemProjection is an item in Jellyfin's BaseItemDto JSON shape.
type ItemProjection struct {
	ID                      string            `json:"Id"`
	Name                    string            `json:"Name"`
	Type                    string            `json:"Type"`
	ServerID                string            `json:"ServerId,omitempty"`
	Overview                string            `json:"Overview,omitempty"`
	Genres                  []string          `json:"Genres,omitempty"`
	DateCreated             *time.Time        `json:"DateCreated,omitempty"`
	PremiereDate            *time.Time        `json:"PremiereDate,omitempty"`
	ProductionYear          int               `json:"ProductionYear,omitempty"`
	PrimaryImageAspectRatio float64           `json:"PrimaryImageAspectRatio,omitempty"`
	ImageTags               map[string]string `json:"ImageTags,omitempty"`
	BackdropImageTags       []string          `json:"BackdropImageTags,omitempty"`
	MediaStreams            []MediaStream     `json:"MediaStreams,omitempty"`
	SeriesName              string            `json:"SeriesName,omitempty"`
	AlbumArtist             string            `json:"AlbumArtist,omitempty"`
	RunTimeTicks            int64             `json:"RunTimeTicks,omitempty"`
	UserData                *UserItemData     `json:"UserData,omitempty"`
	CurrentProgram          *ItemProjection   `json:"CurrentProgram,omitempty"`
}

// MediaStream is one audio, video or subtitle stream of an item.
type MediaStream struct {
	Type         string `json:"Type"`
	Codec        string `json:"Codec,omitempty"`
	Language     string `json:"Language,omitempty"`
	DisplayTitle string `json:"DisplayTitle,omitempty"`
	Index        int    `json:"Index"`
	IsDefault    bool   `json:"IsDefault,omitempty"`
	Width        int    `json:"Width,omitempty"`
	Height       int    `json:"Height,omitempty"`
	Channels     int    `json:"Channels,omitempty"`
	BitRate      int64  `json:"BitRate,omitempty"`
}

// UserItemData is the per-user play state of an item.
type UserItemData struct {
	Played         bool       `json:"Played"`
	PlayCount      int        `json:"PlayCount,omitempty"`
	IsFavorite     bool       `json:"IsFavorite,omitempty"`
	LastPlayedDate *time.Time `json:"LastPlayedDate,omitempty"`
	UnplayedCount  int        `json:"UnplayedItemCount,omitempty"`
}

// QueryResult is the list returned to the home screen.
type QueryResult struct {
	Items            []ItemProjection `json:"Items"`
	TotalRecordCount int              `json:"TotalRecordCount"`
	StartIndex       int              `json:"StartIndex"`
}

// EmptyResult returns a result with a non-nil, empty item list so it
// encodes as [].
func EmptyResult() QueryResult {
	return QueryResult{Items: []ItemProjection{}}
}

// NewQueryResult wraps items, replacing nil with an empty slice.
func NewQueryResult(items []ItemProjection) QueryResult {
	if items == nil {
		items = []ItemProjection{}
	}
	return QueryResult{Items: items, TotalRecordCount: len(items)}
}
