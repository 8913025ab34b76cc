// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package jellyfin

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/homeshelf/internal/logging"
	"github.com/tomtom215/homeshelf/internal/models"
)

// idBatchSize bounds the number of IDs sent in one Ids= lookup.
const idBatchSize = 100

// fileFields are requested for the file-level query. MediaSources carries
// the size; UserData carries the last played date.
var fileFields = []string{"SortName", "DateCreated", "ParentId", "MediaSources"}

// ancestorFields are requested for parent lookups.
var ancestorFields = []string{"SortName", "DateCreated", "ParentId"}

// RouteStyle selects how user-scoped item routes are built.
type RouteStyle int

const (
	// RoutesModern targets Jellyfin 10.9+: /Items?userId=.
	RoutesModern RouteStyle = iota

	// RoutesLegacy targets Jellyfin before 10.9: /Users/{userId}/Items.
	RoutesLegacy
)

// String returns "modern" or "legacy".
func (r RouteStyle) String() string {
	if r == RoutesLegacy {
		return "legacy"
	}
	return "modern"
}

// Catalog is the filter's view of a Jellyfin library.
type Catalog struct {
	api    API
	routes RouteStyle
}

// NewModernCatalog returns a catalog using Jellyfin 10.9+ routes.
func NewModernCatalog(api API) *Catalog {
	return &Catalog{api: api, routes: RoutesModern}
}

// NewLegacyCatalog returns a catalog using pre-10.9 user-scoped routes.
func NewLegacyCatalog(api API) *Catalog {
	return &Catalog{api: api, routes: RoutesLegacy}
}

// Routes reports the route style in use.
func (c *Catalog) Routes() RouteStyle {
	return c.routes
}

// Ping checks that Jellyfin answers.
func (c *Catalog) Ping(ctx context.Context) error {
	return c.api.Ping(ctx)
}

// ResolveUser looks up a user. It returns (nil, nil) when Jellyfin does not
// know the ID.
func (c *Catalog) ResolveUser(ctx context.Context, userID string) (*models.UserRef, error) {
	user, err := c.api.GetUser(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	return &models.UserRef{ID: user.ID, Name: user.Name}, nil
}

// FindItems issues one items query for the file-level kinds and then
// populates up to two parent levels with batched ID lookups. Parents shared
// by several files are the same *CatalogItem.
func (c *Catalog) FindItems(ctx context.Context, q models.ItemQuery) ([]*models.CatalogItem, error) {
	if q.User == nil {
		return nil, errors.New("find items: user is required")
	}

	kinds := make([]string, len(q.Kinds))
	for i, k := range q.Kinds {
		kinds[i] = string(k)
	}

	values := url.Values{}
	values.Set("IncludeItemTypes", strings.Join(kinds, ","))
	values.Set("Recursive", strconv.FormatBool(q.Recursive))
	if q.Limit > 0 {
		values.Set("Limit", strconv.Itoa(q.Limit))
	}
	values.Set("Fields", strings.Join(fileFields, ","))
	values.Set("EnableUserData", "true")
	values.Set("EnableTotalRecordCount", "false")
	if q.MinimalData {
		values.Set("EnableImages", "false")
	}

	path, values := c.itemsRoute(q.User.ID, values)
	resp, err := c.api.GetItems(ctx, path, values)
	if err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}

	files := make([]*models.CatalogItem, 0, len(resp.Items))
	parentIDs := newIDSet()
	parentOf := make(map[*models.CatalogItem]string, len(resp.Items))
	for i := range resp.Items {
		raw := &resp.Items[i]
		item := toCatalogItem(raw)
		files = append(files, item)

		// Movies represent themselves; only episodes and audio need parents.
		if item.Kind == models.KindMovie {
			continue
		}
		if pid := parentIDOf(raw); pid != "" {
			parentOf[item] = pid
			parentIDs.add(pid)
		}
	}

	if parentIDs.len() == 0 {
		return files, nil
	}

	parents, err := c.lookup(ctx, q.User.ID, parentIDs.ids)
	if err != nil {
		return nil, fmt.Errorf("find items: resolve parents: %w", err)
	}

	// Second level: seasons point at their series.
	grandIDs := newIDSet()
	grandOf := make(map[*models.CatalogItem]string)
	for _, p := range parents {
		if p.item.Kind != models.KindSeason {
			continue
		}
		gid := parentIDOf(p.raw)
		if gid == "" {
			continue
		}
		if known, ok := parents[gid]; ok {
			p.item.Parent = known.item
			continue
		}
		grandOf[p.item] = gid
		grandIDs.add(gid)
	}
	if grandIDs.len() > 0 {
		grands, err := c.lookup(ctx, q.User.ID, grandIDs.ids)
		if err != nil {
			return nil, fmt.Errorf("find items: resolve grandparents: %w", err)
		}
		for item, gid := range grandOf {
			if g, ok := grands[gid]; ok {
				item.Parent = g.item
			}
		}
	}

	for item, pid := range parentOf {
		if p, ok := parents[pid]; ok {
			item.Parent = p.item
		}
	}

	logging.Debug().
		Str("routes", c.routes.String()).
		Int("files", len(files)).
		Int("parents", len(parents)).
		Int("grandparents", grandIDs.len()).
		Msg("Catalog items resolved")

	return files, nil
}

// ToProjection fetches the caller-facing fields of one item.
func (c *Catalog) ToProjection(ctx context.Context, item *models.CatalogItem, opts models.ProjectionOptions, user *models.UserRef) (*models.ItemProjection, error) {
	if item == nil {
		return nil, errors.New("projection: nil item")
	}
	userID := ""
	if user != nil {
		userID = user.ID
	}

	values := url.Values{}
	values.Set("Ids", item.ID)
	if len(opts.Fields) > 0 {
		values.Set("Fields", strings.Join(opts.Fields, ","))
	}
	values.Set("EnableImages", strconv.FormatBool(opts.EnableImages))
	if opts.EnableImages {
		values.Set("ImageTypeLimit", "1")
	}
	values.Set("EnableUserData", "true")

	path, values := c.itemsRoute(userID, values)
	resp, err := c.api.GetItems(ctx, path, values)
	if err != nil {
		return nil, fmt.Errorf("projection of %s: %w", item.ID, err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("projection of %s: %w", item.ID, ErrNotFound)
	}

	dto := toProjection(&resp.Items[0], opts)
	return &dto, nil
}

// itemsRoute returns the items path for the configured route style.
func (c *Catalog) itemsRoute(userID string, values url.Values) (string, url.Values) {
	if c.routes == RoutesLegacy && userID != "" {
		return "/Users/" + url.PathEscape(userID) + "/Items", values
	}
	if userID != "" {
		values.Set("userId", userID)
	}
	return "/Items", values
}

type resolved struct {
	raw  *BaseItem
	item *models.CatalogItem
}

// lookup fetches items by ID in batches of idBatchSize.
func (c *Catalog) lookup(ctx context.Context, userID string, ids []string) (map[string]resolved, error) {
	out := make(map[string]resolved, len(ids))
	for start := 0; start < len(ids); start += idBatchSize {
		end := min(start+idBatchSize, len(ids))

		values := url.Values{}
		values.Set("Ids", strings.Join(ids[start:end], ","))
		values.Set("Fields", strings.Join(ancestorFields, ","))
		values.Set("EnableUserData", "true")
		values.Set("EnableImages", "false")
		values.Set("EnableTotalRecordCount", "false")

		path, values := c.itemsRoute(userID, values)
		resp, err := c.api.GetItems(ctx, path, values)
		if err != nil {
			return nil, err
		}
		for i := range resp.Items {
			raw := &resp.Items[i]
			out[raw.ID] = resolved{raw: raw, item: toCatalogItem(raw)}
		}
	}
	return out, nil
}

// parentIDOf prefers the typed parent links Jellyfin sets on episodes and
// tracks over the generic ParentId.
func parentIDOf(b *BaseItem) string {
	switch models.ParseItemKind(b.Type) {
	case models.KindEpisode:
		if b.SeasonID != "" {
			return b.SeasonID
		}
		if b.SeriesID != "" {
			return b.SeriesID
		}
	case models.KindAudio:
		if b.AlbumID != "" {
			return b.AlbumID
		}
	case models.KindSeason:
		if b.SeriesID != "" {
			return b.SeriesID
		}
	}
	return b.ParentID
}

func toCatalogItem(b *BaseItem) *models.CatalogItem {
	item := &models.CatalogItem{
		ID:           b.ID,
		Name:         b.Name,
		Kind:         models.ParseItemKind(b.Type),
		Size:         b.Size(),
		SortName:     b.SortName,
		PremiereDate: b.PremiereDate,
	}
	if item.SortName == "" {
		item.SortName = b.Name
	}
	if b.DateCreated != nil {
		item.DateCreated = *b.DateCreated
	}
	if b.UserData != nil && b.UserData.LastPlayedDate != nil {
		played := *b.UserData.LastPlayedDate
		item.DateLastSaved = &played
	}
	return item
}

func toProjection(b *BaseItem, opts models.ProjectionOptions) models.ItemProjection {
	want := make(map[string]bool, len(opts.Fields))
	for _, f := range opts.Fields {
		want[f] = true
	}

	dto := models.ItemProjection{
		ID:             b.ID,
		Name:           b.Name,
		Type:           b.Type,
		ServerID:       b.ServerID,
		PremiereDate:   b.PremiereDate,
		ProductionYear: b.ProductionYear,
		SeriesName:     b.SeriesName,
		AlbumArtist:    b.AlbumArtist,
		RunTimeTicks:   b.RunTimeTicks,
	}
	if want[models.FieldOverview] {
		dto.Overview = b.Overview
	}
	if want[models.FieldGenres] {
		dto.Genres = b.Genres
	}
	if want[models.FieldDateCreated] {
		dto.DateCreated = b.DateCreated
	}
	if want[models.FieldMediaStreams] {
		dto.MediaStreams = b.MediaStreams
	}
	if want[models.FieldPrimaryImageAspectRatio] {
		dto.PrimaryImageAspectRatio = b.PrimaryImageAspectRatio
	}
	if opts.EnableImages {
		dto.ImageTags = b.ImageTags
		dto.BackdropImageTags = b.BackdropImageTags
	}
	if b.UserData != nil {
		dto.UserData = &models.UserItemData{
			Played:         b.UserData.Played,
			PlayCount:      b.UserData.PlayCount,
			IsFavorite:     b.UserData.IsFavorite,
			LastPlayedDate: b.UserData.LastPlayedDate,
			UnplayedCount:  b.UserData.UnplayedItemCount,
		}
	}
	if opts.AddCurrentProgram && b.CurrentProgram != nil {
		program := toProjection(b.CurrentProgram, models.ProjectionOptions{Fields: opts.Fields, EnableImages: opts.EnableImages})
		dto.CurrentProgram = &program
	}
	return dto
}

// idSet keeps insertion order so batches are deterministic.
type idSet struct {
	ids  []string
	seen map[string]struct{}
}

func newIDSet() *idSet {
	return &idSet{seen: make(map[string]struct{})}
}

func (s *idSet) add(id string) {
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
}

func (s *idSet) len() int {
	return len(s.ids)
}
