// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"strings"

	"github.com/taibuivan/serieshub/pkg/pointer"
	"github.com/taibuivan/serieshub/pkg/slice"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// # Normalisation

/*
NormalizePayload converts a validated create payload into [Fields].

Description: Trims every string and applies the defaults: visible is true,
descriptions are empty, chapter number and qualification are zero.

Parameters:
  - payload: Payload (Already validated)

Returns:
  - Fields: The canonical scalar payload
*/
func NormalizePayload(payload Payload) Fields {
	fields := Fields{
		Name:          strings.TrimSpace(payload.Name),
		ChapterNumber: pointer.Val(payload.ChapterNumber),
		Year:          payload.Year,
		Description:   strings.TrimSpace(pointer.Val(payload.Description)),
		DescriptionEN: strings.TrimSpace(pointer.Val(payload.DescriptionEN)),
		Qualification: pointer.Val(payload.Qualification),
		DemographyID:  pointer.Val(payload.DemographyID),
		Visible:       pointer.Fallback(payload.Visible, true),
	}

	return fields
}

// NormalizePatch trims the string members that are present.
func NormalizePatch(patch Patch) Patch {
	normalized := patch
	normalized.Name = trimPresent(patch.Name)
	normalized.Description = trimPresent(patch.Description)
	normalized.DescriptionEN = trimPresent(patch.DescriptionEN)
	return normalized
}

// NormalizeIDs turns an id list into a set. Non-positive ids are dropped and
// duplicates collapse, keeping first occurrence order.
func NormalizeIDs(ids []int64) []int64 {
	positive := slice.Filter(ids, func(id int64) bool { return id > 0 })
	return slice.Unique(positive)
}

// NormalizeTitles trims every title, drops blanks and removes duplicates
// within the list. Comparison is case-sensitive; the first occurrence wins.
func NormalizeTitles(titles []string) []string {
	trimmed := slice.Map(titles, strings.TrimSpace)
	nonBlank := slice.Filter(trimmed, func(title string) bool { return title != "" })
	return slice.Unique(nonBlank)
}

/*
NameKey folds a series name into its natural-key form.

Description: Interior whitespace runs collapse to a single space, the text
is composed to NFC and then case-folded, so "One  Piece" and "one piece"
resolve to the same series.

Parameters:
  - name: string

Returns:
  - string: The comparison key stored alongside the name
*/
func NameKey(name string) string {
	collapsed := strings.Join(strings.Fields(name), " ")
	// Casers keep per-call state and must not be shared between goroutines
	return cases.Fold().String(norm.NFC.String(collapsed))
}

func trimPresent(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}
