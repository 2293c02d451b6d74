// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/serieshub/internal/core/series"
	"github.com/taibuivan/serieshub/internal/platform/apperr"
	"github.com/taibuivan/serieshub/pkg/pointer"
)

func validPayload() series.Payload {
	return series.Payload{
		Name:         "One Piece",
		Year:         pointer.To(1997),
		DemographyID: pointer.To(int64(1)),
	}
}

// fieldsOf returns the failed field names of a validation error.
func fieldsOf(t *testing.T, err error) []string {
	t.Helper()

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	require.Equal(t, apperr.CodeValidation, appErr.Code)

	var fields []string
	for _, detail := range appErr.Details {
		fields = append(fields, detail.Field)
	}
	return fields
}

/*
TestValidateCreate_Boundaries verifies the inclusive year and qualification ranges.
*/
func TestValidateCreate_Boundaries(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		mutate func(*series.Payload)
		valid  bool
	}{
		{"year_1899", func(p *series.Payload) { p.Year = pointer.To(1899) }, false},
		{"year_1900", func(p *series.Payload) { p.Year = pointer.To(1900) }, true},
		{"year_horizon", func(p *series.Payload) { p.Year = pointer.To(now.Year() + 5) }, true},
		{"year_past_horizon", func(p *series.Payload) { p.Year = pointer.To(now.Year() + 6) }, false},
		{"year_absent", func(p *series.Payload) { p.Year = nil }, true},
		{"qualification_negative", func(p *series.Payload) { p.Qualification = pointer.To(-0.01) }, false},
		{"qualification_zero", func(p *series.Payload) { p.Qualification = pointer.To(0.0) }, true},
		{"qualification_ten", func(p *series.Payload) { p.Qualification = pointer.To(10.0) }, true},
		{"qualification_above", func(p *series.Payload) { p.Qualification = pointer.To(10.01) }, false},
		{"chapter_negative", func(p *series.Payload) { p.ChapterNumber = pointer.To(-1) }, false},
		{"chapter_zero", func(p *series.Payload) { p.ChapterNumber = pointer.To(0) }, true},
		{"chapter_column_max", func(p *series.Payload) { p.ChapterNumber = pointer.To(int(series.MaxColumnInt)) }, true},
		{"chapter_past_column", func(p *series.Payload) { p.ChapterNumber = pointer.To(int(series.MaxColumnInt) + 1) }, false},
		{"name_too_short", func(p *series.Payload) { p.Name = " A " }, false},
		{"name_two_chars", func(p *series.Payload) { p.Name = "  AB  " }, true},
		{"name_too_long", func(p *series.Payload) { p.Name = strings.Repeat("a", 201) }, false},
		{"description_too_long", func(p *series.Payload) { p.Description = pointer.To(strings.Repeat("d", 5001)) }, false},
		{"description_en_limit", func(p *series.Payload) { p.DescriptionEN = pointer.To(strings.Repeat("d", 5000)) }, true},
		{"demography_zero", func(p *series.Payload) { p.DemographyID = pointer.To(int64(0)) }, false},
		{"demography_past_column", func(p *series.Payload) { p.DemographyID = pointer.To(series.MaxColumnInt + 1) }, false},
		{"name_folds_longer", func(p *series.Payload) { p.Name = strings.Repeat("ß", 200) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			tt.mutate(&payload)

			err := series.ValidateCreate(payload, now)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

/*
TestValidateCreate_AggregatesReasons verifies that every failed rule is reported at once.
*/
func TestValidateCreate_AggregatesReasons(t *testing.T) {
	err := series.ValidateCreate(series.Payload{
		Name:          "   ",
		Year:          pointer.To(1800),
		Qualification: pointer.To(11.0),
	}, time.Now())

	assert.ElementsMatch(t,
		[]string{series.FieldName, series.FieldDemographyID, series.FieldYear, series.FieldQualification},
		fieldsOf(t, err),
	)
}

/*
TestValidateUpdate verifies partial update rules, including the empty patch.
*/
func TestValidateUpdate(t *testing.T) {
	now := time.Now()

	t.Run("only_id", func(t *testing.T) {
		err := series.ValidateUpdate(series.UpdateRequest{ID: 7}, now)

		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		require.Len(t, appErr.Details, 1)
		assert.Equal(t, series.FieldFields, appErr.Details[0].Field)
		assert.Equal(t, "No fields to update", appErr.Details[0].Message)
	})

	t.Run("invalid_id", func(t *testing.T) {
		err := series.ValidateUpdate(series.UpdateRequest{ID: 0, Patch: series.Patch{Visible: pointer.To(false)}}, now)
		assert.Equal(t, []string{series.FieldID}, fieldsOf(t, err))
	})

	t.Run("present_fields_checked", func(t *testing.T) {
		err := series.ValidateUpdate(series.UpdateRequest{ID: 7, Patch: series.Patch{
			Name:         pointer.To("x"),
			DemographyID: pointer.To(int64(-3)),
		}}, now)
		assert.ElementsMatch(t, []string{series.FieldName, series.FieldDemographyID}, fieldsOf(t, err))
	})

	t.Run("single_field", func(t *testing.T) {
		err := series.ValidateUpdate(series.UpdateRequest{ID: 7, Patch: series.Patch{Qualification: pointer.To(8.5)}}, now)
		assert.NoError(t, err)
	})
}

/*
TestValidateRelations verifies the id and title list rules of relationship commands.
*/
func TestValidateRelations(t *testing.T) {
	t.Run("genres_empty", func(t *testing.T) {
		err := series.ValidateGenres(series.GenresRequest{SeriesID: 1})
		assert.Equal(t, []string{series.FieldGenreIDs}, fieldsOf(t, err))
	})

	t.Run("genres_report_invalid_elements", func(t *testing.T) {
		err := series.ValidateGenres(series.GenresRequest{SeriesID: 1, GenreIDs: []int64{3, 0, -2}})

		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "Invalid ids: 0, -2", appErr.Details[0].Message)
	})

	t.Run("genres_duplicates_allowed", func(t *testing.T) {
		assert.NoError(t, series.ValidateGenres(series.GenresRequest{SeriesID: 1, GenreIDs: []int64{1, 2, 2, 3}}))
	})

	t.Run("series_id", func(t *testing.T) {
		err := series.ValidateGenres(series.GenresRequest{SeriesID: -1, GenreIDs: []int64{1}})
		assert.Equal(t, []string{series.FieldSeriesID}, fieldsOf(t, err))
	})

	t.Run("titles_empty", func(t *testing.T) {
		err := series.ValidateAddTitles(series.AddTitlesRequest{SeriesID: 1})
		assert.Equal(t, []string{series.FieldTitles}, fieldsOf(t, err))
	})

	t.Run("genres_past_column", func(t *testing.T) {
		err := series.ValidateGenres(series.GenresRequest{SeriesID: 1, GenreIDs: []int64{1, series.MaxColumnInt + 1}})
		assert.Equal(t, []string{series.FieldGenreIDs}, fieldsOf(t, err))
	})

	t.Run("title_too_long", func(t *testing.T) {
		err := series.ValidateAddTitles(series.AddTitlesRequest{
			SeriesID: 1,
			Titles:   []string{"Sword Wind", strings.Repeat("t", series.TitleMaxLength+1)},
		})
		assert.Equal(t, []string{series.FieldTitles}, fieldsOf(t, err))
	})

	t.Run("title_at_limit", func(t *testing.T) {
		err := series.ValidateAddTitles(series.AddTitlesRequest{
			SeriesID: 1,
			Titles:   []string{"  " + strings.Repeat("t", series.TitleMaxLength) + "  "},
		})
		assert.NoError(t, err)
	})

	t.Run("title_ids_empty", func(t *testing.T) {
		err := series.ValidateRemoveTitles(series.RemoveTitlesRequest{SeriesID: 1, TitleIDs: []int64{}})
		assert.Equal(t, []string{series.FieldTitleIDs}, fieldsOf(t, err))
	})
}

/*
TestValidateCreateComplete verifies that genres and titles the store cannot hold are rejected
while values normalisation drops are left alone.
*/
func TestValidateCreateComplete(t *testing.T) {
	now := time.Now()

	t.Run("droppable_values_pass", func(t *testing.T) {
		err := series.ValidateCreateComplete(series.CreateCompleteRequest{
			Payload: validPayload(),
			Genres:  []int64{0, -1, 2},
			Titles:  []string{"   ", "Sword Wind"},
		}, now)
		assert.NoError(t, err)
	})

	t.Run("oversized_values_rejected", func(t *testing.T) {
		err := series.ValidateCreateComplete(series.CreateCompleteRequest{
			Payload: validPayload(),
			Genres:  []int64{series.MaxColumnInt + 1},
			Titles:  []string{strings.Repeat("t", series.TitleMaxLength+1)},
		}, now)
		assert.ElementsMatch(t, []string{series.FieldGenreIDs, series.FieldTitles}, fieldsOf(t, err))
	})

	t.Run("payload_still_checked", func(t *testing.T) {
		payload := validPayload()
		payload.Name = ""

		err := series.ValidateCreateComplete(series.CreateCompleteRequest{Payload: payload}, now)
		assert.Equal(t, []string{series.FieldName}, fieldsOf(t, err))
	})
}
