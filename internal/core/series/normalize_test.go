// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/serieshub/internal/core/series"
	"github.com/taibuivan/serieshub/pkg/pointer"
)

/*
TestNormalizePayload_Defaults verifies trimming and the documented defaults.
*/
func TestNormalizePayload_Defaults(t *testing.T) {
	fields := series.NormalizePayload(series.Payload{
		Name:         "  Berserk ",
		DemographyID: pointer.To(int64(3)),
	})

	assert.Equal(t, "Berserk", fields.Name)
	assert.True(t, fields.Visible)
	assert.Equal(t, "", fields.Description)
	assert.Equal(t, "", fields.DescriptionEN)
	assert.Zero(t, fields.ChapterNumber)
	assert.Zero(t, fields.Qualification)
	assert.Nil(t, fields.Year)
	assert.Equal(t, int64(3), fields.DemographyID)

	hidden := series.NormalizePayload(series.Payload{Name: "Berserk", Visible: pointer.To(false)})
	assert.False(t, hidden.Visible)
}

/*
TestNormalizeIDs verifies set semantics and the removal of non-positive ids.
*/
func TestNormalizeIDs(t *testing.T) {
	assert.Equal(t, []int64{1, 2, 3}, series.NormalizeIDs([]int64{1, 2, 2, 3}))
	assert.Equal(t, []int64{4, 1}, series.NormalizeIDs([]int64{4, 0, -1, 4, 1}))
	assert.Empty(t, series.NormalizeIDs([]int64{0, -5}))
}

/*
TestNormalizeTitles verifies trimming, blank removal and case-sensitive dedup.
*/
func TestNormalizeTitles(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"trim_and_dedup", []string{"A", " A ", "B"}, []string{"A", "B"}},
		{"case_sensitive", []string{"X", "x "}, []string{"X", "x"}},
		{"drop_blank", []string{"  ", "", "C"}, []string{"C"}},
		{"order_kept", []string{"b", "a", "b"}, []string{"b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, series.NormalizeTitles(tt.input))
		})
	}
}

/*
TestNameKey verifies that case and whitespace runs do not change the natural key.
*/
func TestNameKey(t *testing.T) {
	assert.Equal(t, series.NameKey("One Piece"), series.NameKey("  one   PIECE "))
	assert.NotEqual(t, series.NameKey("One Piece"), series.NameKey("OnePiece"))

	// Folding may lengthen the key past the name limit
	folded := series.NameKey(strings.Repeat("ß", series.NameMaxLength))
	assert.Equal(t, 2*series.NameMaxLength, utf8.RuneCountInString(folded))
}

/*
TestNormalizePatch verifies that only present strings are trimmed.
*/
func TestNormalizePatch(t *testing.T) {
	patch := series.NormalizePatch(series.Patch{Name: pointer.To("  Vagabond "), Visible: pointer.To(true)})

	assert.Equal(t, "Vagabond", *patch.Name)
	assert.Nil(t, patch.Description)
	assert.True(t, *patch.Visible)
}
