// Homeshelf - Curated Home Screen Sections for Jellyfin
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homeshelf

package filter

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/homeshelf/internal/models"
)

var (
	errUpstream = errors.New("jellyfin unavailable")
	baseTime    = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
)

// fakeCatalog is an in-memory Catalog that records its calls.
type fakeCatalog struct {
	mu          sync.Mutex
	users       map[string]*models.UserRef
	userErr     error
	items       []*models.CatalogItem
	findErr     error
	failProject map[string]bool
	queries     []models.ItemQuery
	projected   []string
}

func newFakeCatalog(items ...*models.CatalogItem) *fakeCatalog {
	return &fakeCatalog{
		users: map[string]*models.UserRef{
			testUserID: {ID: testUserID, Name: "alice"},
		},
		items:       items,
		failProject: map[string]bool{},
	}
}

func (f *fakeCatalog) ResolveUser(_ context.Context, userID string) (*models.UserRef, error) {
	if f.userErr != nil {
		return nil, f.userErr
	}
	return f.users[userID], nil
}

func (f *fakeCatalog) FindItems(_ context.Context, q models.ItemQuery) ([]*models.CatalogItem, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	wanted := make(map[models.ItemKind]bool, len(q.Kinds))
	for _, k := range q.Kinds {
		wanted[k] = true
	}
	var out []*models.CatalogItem
	for _, it := range f.items {
		if wanted[it.Kind] {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCatalog) ToProjection(_ context.Context, item *models.CatalogItem, _ models.ProjectionOptions, _ *models.UserRef) (*models.ItemProjection, error) {
	f.mu.Lock()
	f.projected = append(f.projected, item.ID)
	f.mu.Unlock()
	if f.failProject[item.ID] {
		return nil, errors.New("projection failed")
	}
	return &models.ItemProjection{ID: item.ID, Name: item.Name, Type: string(item.Kind)}, nil
}

func (f *fakeCatalog) queryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

// profileMap is a ProfileSource backed by a map.
type profileMap map[string]models.SectionProfile

func (m profileMap) Find(id string) (models.SectionProfile, bool) {
	p, ok := m[id]
	return p, ok
}

const (
	testUserID    = "0f6e0f7a1b2c4d3e8f9a0b1c2d3e4f50"
	testProfileID = "section-1"
)

func sizePtr(n int64) *int64 { return &n }

func timePtr(t time.Time) *time.Time { return &t }

func movie(id string, size int64, created time.Time) *models.CatalogItem {
	return &models.CatalogItem{ID: id, Name: id, SortName: id, Kind: models.KindMovie, Size: sizePtr(size), DateCreated: created}
}

func series(id string) *models.CatalogItem {
	return &models.CatalogItem{ID: id, Name: id, SortName: id, Kind: models.KindSeries, DateCreated: baseTime}
}

func season(id string, parent *models.CatalogItem) *models.CatalogItem {
	return &models.CatalogItem{ID: id, Name: id, SortName: id, Kind: models.KindSeason, Parent: parent, DateCreated: baseTime}
}

func episode(id string, size int64, parent *models.CatalogItem) *models.CatalogItem {
	return &models.CatalogItem{ID: id, Name: id, SortName: id, Kind: models.KindEpisode, Size: sizePtr(size), Parent: parent, DateCreated: baseTime}
}

func album(id string) *models.CatalogItem {
	return &models.CatalogItem{ID: id, Name: id, SortName: id, Kind: models.KindMusicAlbum, DateCreated: baseTime}
}

func track(id string, size int64, parent *models.CatalogItem) *models.CatalogItem {
	return &models.CatalogItem{ID: id, Name: id, SortName: id, Kind: models.KindAudio, Size: sizePtr(size), Parent: parent, DateCreated: baseTime}
}

func moviesProfile(sortBy models.SortKey, descending bool) models.SectionProfile {
	p := models.NewSectionProfile(testProfileID)
	p.IncludeMovies, p.IncludeSeries, p.IncludeMusic = true, false, false
	p.SortBy = sortBy
	p.SortDescending = descending
	return p
}

func resultIDs(r models.QueryResult) []string {
	ids := make([]string, len(r.Items))
	for i := range r.Items {
		ids[i] = r.Items[i].ID
	}
	return ids
}

func itemIDs(items []*models.CatalogItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func checkIDs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got ids %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got ids %v, want %v", got, want)
		}
	}
}

func checkEmpty(t *testing.T, r models.QueryResult) {
	t.Helper()
	if r.Items == nil {
		t.Error("Items is nil, want empty slice")
	}
	if len(r.Items) != 0 || r.TotalRecordCount != 0 {
		t.Errorf("expected empty result, got %d items (count %d)", len(r.Items), r.TotalRecordCount)
	}
}

func checkIntEqual(t *testing.T, name string, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %d, want %d", name, got, want)
	}
}
