// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

/*
Package models defines the data structures shared by the Homeshelf packages.

Section configuration:

  - SectionProfile: one configured home-screen view (content kinds, sort order)
  - SortKey: ordering applied to representative items
  - SectionDescriptor: registration payload sent to the home-screen plugin

Catalog view (borrowed from Jellyfin for the duration of one call):

  - CatalogItem: a file or container item with an optional parent chain
  - ItemKind: Jellyfin item type
  - ItemQuery, UserRef: inputs to the catalog

Caller-facing output:

  - ItemProjection: Jellyfin BaseItemDto shaped item
  - QueryResult: the list returned to the home screen
  - SectionPayload: the {UserId, AdditionalData} request envelope

Operator API:

  - APIResponse, APIError, Metadata

Models carry no behaviour beyond small derivations (FileKinds, Representative
lookups live in the filter package). They are safe to copy by value.
*/
package models
