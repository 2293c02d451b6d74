// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/taibuivan/serieshub/internal/core/series"
	"github.com/taibuivan/serieshub/internal/platform/apperr"
)

// # In-Memory Store

// memoryStore implements series.Store over maps. Failures can be injected
// per method name through fail.
type memoryStore struct {
	mu sync.Mutex

	nextID      int64
	nextTitleID int64
	rows        map[int64]*series.Series
	genres      map[int64][]int64
	titles      map[int64][]series.Title

	calls         []string
	fail          map[string]error
	rankRefreshes int

	// vanishAfterWrite makes FindByID report absence once any write ran.
	vanishAfterWrite bool
	writes           int

	// deleteMisses makes Delete match no row, as if another writer got there first.
	deleteMisses bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		rows:   map[int64]*series.Series{},
		genres: map[int64][]int64{},
		titles: map[int64][]series.Title{},
		fail:   map[string]error{},
	}
}

func (store *memoryStore) enter(method string) error {
	store.calls = append(store.calls, method)
	return store.fail[method]
}

func (store *memoryStore) called(method string) int {
	store.mu.Lock()
	defer store.mu.Unlock()

	count := 0
	for _, call := range store.calls {
		if call == method {
			count++
		}
	}
	return count
}

func (store *memoryStore) count() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.rows)
}

func (store *memoryStore) genreIDs(id int64) []int64 {
	store.mu.Lock()
	defer store.mu.Unlock()
	return append([]int64(nil), store.genres[id]...)
}

func (store *memoryStore) titleNames(id int64) []string {
	store.mu.Lock()
	defer store.mu.Unlock()

	var names []string
	for _, title := range store.titles[id] {
		names = append(names, title.Name)
	}
	return names
}

// seed inserts a row directly, bypassing the call log.
func (store *memoryStore) seed(row series.Series) int64 {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.nextID++
	row.ID = store.nextID
	store.rows[row.ID] = &row
	return row.ID
}

func (store *memoryStore) hydrate(row *series.Series) *series.Series {
	copied := *row
	copied.Genres = []series.Genre{}
	for _, id := range store.genres[row.ID] {
		copied.Genres = append(copied.Genres, series.Genre{ID: id, Name: fmt.Sprintf("genre-%d", id)})
	}
	copied.Titles = append([]series.Title{}, store.titles[row.ID]...)
	return &copied
}

func (store *memoryStore) FindByID(_ context.Context, id int64) (*series.Series, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.enter("FindByID"); err != nil {
		return nil, err
	}

	row, ok := store.rows[id]
	if !ok || (store.vanishAfterWrite && store.writes > 0) {
		return nil, nil
	}
	return store.hydrate(row), nil
}

func (store *memoryStore) FindByNameAndYear(_ context.Context, name string, year *int) (*series.Series, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.enter("FindByNameAndYear"); err != nil {
		return nil, err
	}

	for _, id := range store.sortedIDs() {
		row := store.rows[id]
		if series.NameKey(row.Name) == series.NameKey(name) && sameYear(row.Year, year) {
			return store.hydrate(row), nil
		}
	}
	return nil, nil
}

func (store *memoryStore) Create(_ context.Context, fields series.Fields) (int64, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.enter("Create"); err != nil {
		return 0, err
	}
	store.writes++

	store.nextID++
	store.rows[store.nextID] = &series.Series{
		ID:            store.nextID,
		Name:          fields.Name,
		ChapterNumber: fields.ChapterNumber,
		Year:          fields.Year,
		Description:   fields.Description,
		DescriptionEN: fields.DescriptionEN,
		Qualification: fields.Qualification,
		DemographyID:  fields.DemographyID,
		Visible:       fields.Visible,
	}
	return store.nextID, nil
}

func (store *memoryStore) Update(_ context.Context, id int64, patch series.Patch) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.enter("Update"); err != nil {
		return err
	}
	store.writes++

	row, ok := store.rows[id]
	if !ok {
		return apperr.NotFound("Series")
	}

	if patch.Name != nil {
		row.Name = *patch.Name
	}
	if patch.ChapterNumber != nil {
		row.ChapterNumber = *patch.ChapterNumber
	}
	if patch.Year != nil {
		row.Year = patch.Year
	}
	if patch.Description != nil {
		row.Description = *patch.Description
	}
	if patch.DescriptionEN != nil {
		row.DescriptionEN = *patch.DescriptionEN
	}
	if patch.Qualification != nil {
		row.Qualification = *patch.Qualification
	}
	if patch.DemographyID != nil {
		row.DemographyID = *patch.DemographyID
	}
	if patch.Visible != nil {
		row.Visible = *patch.Visible
	}
	return nil
}

func (store *memoryStore) Delete(_ context.Context, id int64) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.enter("Delete"); err != nil {
		return false, err
	}
	store.writes++

	if store.deleteMisses {
		return false, nil
	}

	_, ok := store.rows[id]
	delete(store.rows, id)
	delete(store.genres, id)
	delete(store.titles, id)
	return ok, nil
}

func (store *memoryStore) UpdateImage(_ context.Context, id int64, path string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.enter("UpdateImage"); err != nil {
		return false, err
	}
	store.writes++

	row, ok := store.rows[id]
	if !ok {
		return false, nil
	}
	row.Image = &path
	return true, nil
}

// UpdateRank orders visible series by qualification, then chapters, then id.
func (store *memoryStore) UpdateRank(_ context.Context) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.enter("UpdateRank"); err != nil {
		return err
	}
	store.rankRefreshes++

	var visible []*series.Series
	for _, id := range store.sortedIDs() {
		row := store.rows[id]
		row.Rank = 0
		if row.Visible {
			visible = append(visible, row)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].Qualification != visible[j].Qualification {
			return visible[i].Qualification > visible[j].Qualification
		}
		return visible[i].ChapterNumber > visible[j].ChapterNumber
	})
	for position, row := range visible {
		row.Rank = position + 1
	}
	return nil
}

func (store *memoryStore) AssignGenres(_ context.Context, seriesID int64, genreIDs []int64) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.enter("AssignGenres"); err != nil {
		return false, err
	}
	store.writes++

	store.genres[seriesID] = append([]int64(nil), genreIDs...)
	return true, nil
}

func (store *memoryStore) RemoveGenres(_ context.Context, seriesID int64, genreIDs []int64) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.enter("RemoveGenres"); err != nil {
		return false, err
	}
	store.writes++

	removed := false
	var kept []int64
	for _, id := range store.genres[seriesID] {
		if contains(genreIDs, id) {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	store.genres[seriesID] = kept
	return removed, nil
}

func (store *memoryStore) AddTitles(_ context.Context, seriesID int64, titles []string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.enter("AddTitles"); err != nil {
		return false, err
	}
	store.writes++

	for _, name := range titles {
		store.nextTitleID++
		store.titles[seriesID] = append(store.titles[seriesID], series.Title{ID: store.nextTitleID, Name: name})
	}
	return true, nil
}

func (store *memoryStore) RemoveTitles(_ context.Context, seriesID int64, titleIDs []int64) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.enter("RemoveTitles"); err != nil {
		return false, err
	}
	store.writes++

	removed := false
	var kept []series.Title
	for _, title := range store.titles[seriesID] {
		if contains(titleIDs, title.ID) {
			removed = true
			continue
		}
		kept = append(kept, title)
	}
	store.titles[seriesID] = kept
	return removed, nil
}

func (store *memoryStore) sortedIDs() []int64 {
	ids := make([]int64, 0, len(store.rows))
	for id := range store.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sameYear(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func contains(ids []int64, id int64) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// # Image Service Fake

type fakeImages struct {
	mu sync.Mutex

	processErr error
	deleteErr  error
	saved      []string
	deleted    []string
}

func (images *fakeImages) ProcessAndSave(_ context.Context, data []byte, seriesID int64) (string, error) {
	images.mu.Lock()
	defer images.mu.Unlock()

	if images.processErr != nil {
		return "", images.processErr
	}
	path := fmt.Sprintf("series/%d/img-%d.jpg", seriesID, len(images.saved)+1)
	images.saved = append(images.saved, path)
	return path, nil
}

func (images *fakeImages) Delete(_ context.Context, path string) error {
	images.mu.Lock()
	defer images.mu.Unlock()

	images.deleted = append(images.deleted, path)
	return images.deleteErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
