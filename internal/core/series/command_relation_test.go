// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/serieshub/internal/core/series"
	"github.com/taibuivan/serieshub/internal/platform/apperr"
)

/*
TestAssignGenres_ReplacesSet verifies dedup and full replacement.
*/
func TestAssignGenres_ReplacesSet(t *testing.T) {
	store := newMemoryStore()
	id := store.seed(series.Series{Name: "Mushishi"})
	command := series.NewAssignGenresCommand(store, store, discardLogger())
	ctx := context.Background()

	result, err := command.Execute(ctx, series.GenresRequest{SeriesID: id, GenreIDs: []int64{1, 2, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, store.genreIDs(id))
	assert.Equal(t, "Genres assigned to series 1", result.Message)

	_, err = command.Execute(ctx, series.GenresRequest{SeriesID: id, GenreIDs: []int64{4}})
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, store.genreIDs(id))
}

/*
TestRemoveGenres_Subtracts verifies subtraction of a subset.
*/
func TestRemoveGenres_Subtracts(t *testing.T) {
	store := newMemoryStore()
	id := store.seed(series.Series{Name: "Mushishi"})
	ctx := context.Background()

	_, err := series.NewAssignGenresCommand(store, store, discardLogger()).Execute(ctx, series.GenresRequest{SeriesID: id, GenreIDs: []int64{1, 2, 3}})
	require.NoError(t, err)

	result, err := series.NewRemoveGenresCommand(store, store, discardLogger()).Execute(ctx, series.GenresRequest{SeriesID: id, GenreIDs: []int64{2, 2}})
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, []int64{1, 3}, store.genreIDs(id))
}

/*
TestRelations_Failures verifies validation and existence checks of every relationship command.
*/
func TestRelations_Failures(t *testing.T) {
	ctx := context.Background()
	logger := discardLogger()

	tests := []struct {
		name string
		run  func(store *memoryStore, id int64) error
		code string
	}{
		{
			name: "remove_genres_empty",
			run: func(store *memoryStore, id int64) error {
				_, err := series.NewRemoveGenresCommand(store, store, logger).Execute(ctx, series.GenresRequest{SeriesID: id, GenreIDs: []int64{}})
				return err
			},
			code: apperr.CodeValidation,
		},
		{
			name: "remove_titles_empty",
			run: func(store *memoryStore, id int64) error {
				_, err := series.NewRemoveTitlesCommand(store, store, logger).Execute(ctx, series.RemoveTitlesRequest{SeriesID: id})
				return err
			},
			code: apperr.CodeValidation,
		},
		{
			name: "add_titles_all_blank",
			run: func(store *memoryStore, id int64) error {
				_, err := series.NewAddTitlesCommand(store, store, logger).Execute(ctx, series.AddTitlesRequest{SeriesID: id, Titles: []string{" ", ""}})
				return err
			},
			code: apperr.CodeValidation,
		},
		{
			name: "assign_unknown_series",
			run: func(store *memoryStore, _ int64) error {
				_, err := series.NewAssignGenresCommand(store, store, logger).Execute(ctx, series.GenresRequest{SeriesID: 99, GenreIDs: []int64{1}})
				return err
			},
			code: apperr.CodeNotFound,
		},
		{
			name: "add_titles_unknown_series",
			run: func(store *memoryStore, _ int64) error {
				_, err := series.NewAddTitlesCommand(store, store, logger).Execute(ctx, series.AddTitlesRequest{SeriesID: 99, Titles: []string{"Alt"}})
				return err
			},
			code: apperr.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryStore()
			id := store.seed(series.Series{Name: "Mushishi"})

			err := tt.run(store, id)

			assert.True(t, apperr.HasCode(err, tt.code), "got %v", err)
			assert.Zero(t, store.writes)
		})
	}
}

/*
TestAddTitles_AppendsWithinRequestDedup verifies trimming, intra-request dedup
and the absence of cross-request dedup.
*/
func TestAddTitles_AppendsWithinRequestDedup(t *testing.T) {
	store := newMemoryStore()
	id := store.seed(series.Series{Name: "Mushishi"})
	command := series.NewAddTitlesCommand(store, store, discardLogger())
	ctx := context.Background()

	_, err := command.Execute(ctx, series.AddTitlesRequest{SeriesID: id, Titles: []string{"A", " A ", "B"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, store.titleNames(id))

	_, err = command.Execute(ctx, series.AddTitlesRequest{SeriesID: id, Titles: []string{"A"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "A"}, store.titleNames(id))
}

/*
TestRemoveTitles_ByID verifies subtraction by title id.
*/
func TestRemoveTitles_ByID(t *testing.T) {
	store := newMemoryStore()
	id := store.seed(series.Series{Name: "Mushishi"})
	ctx := context.Background()

	_, err := series.NewAddTitlesCommand(store, store, discardLogger()).Execute(ctx, series.AddTitlesRequest{SeriesID: id, Titles: []string{"A", "B", "C"}})
	require.NoError(t, err)

	result, err := series.NewRemoveTitlesCommand(store, store, discardLogger()).Execute(ctx, series.RemoveTitlesRequest{SeriesID: id, TitleIDs: []int64{1, 3}})
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, []string{"B"}, store.titleNames(id))
}
