// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"strings"
	"time"

	"github.com/taibuivan/serieshub/internal/platform/validate"
)

// # Validation Rules

// Every rule collects all failures before returning, so a single response
// lists every rejected field.

/*
ValidateCreate checks the payload of the create command.

Parameters:
  - payload: Payload
  - now: time.Time (Reference for the year horizon)

Returns:
  - error: apperr VALIDATION_ERROR listing every failed field, or nil
*/
func ValidateCreate(payload Payload, now time.Time) error {
	validator := &validate.Validator{}
	checkPayload(validator, payload, now)
	return validator.Err()
}

/*
ValidateCreateComplete checks the payload plus the genres and titles of a
create-complete request.

Description: Non-positive genre ids and blank titles are dropped later by
normalisation, so only values the store cannot hold are rejected here.

Parameters:
  - request: CreateCompleteRequest
  - now: time.Time

Returns:
  - error: apperr VALIDATION_ERROR, or nil
*/
func ValidateCreateComplete(request CreateCompleteRequest, now time.Time) error {
	validator := &validate.Validator{}
	checkPayload(validator, request.Payload, now)
	validator.
		IDsAtMost(FieldGenreIDs, request.Genres, MaxColumnInt).
		EachMaxLen(FieldTitles, request.Titles, TitleMaxLength)
	return validator.Err()
}

/*
ValidateUpdate checks a partial update.

Description: Only the members present are checked. A patch that carries
no member at all is rejected with "No fields to update".

Parameters:
  - request: UpdateRequest
  - now: time.Time

Returns:
  - error: apperr VALIDATION_ERROR, or nil
*/
func ValidateUpdate(request UpdateRequest, now time.Time) error {
	validator := &validate.Validator{}
	validator.Positive(FieldID, request.ID)
	validator.Custom(FieldFields, request.Patch.IsEmpty(), "No fields to update")

	if request.Name != nil {
		checkName(validator, *request.Name)
	}

	if request.DemographyID != nil {
		checkDemography(validator, *request.DemographyID)
	}

	checkScalars(validator, scalars{
		chapterNumber: request.ChapterNumber,
		year:          request.Year,
		description:   request.Description,
		descriptionEN: request.DescriptionEN,
		qualification: request.Qualification,
	}, now)

	return validator.Err()
}

// ValidateGenres checks an assign or remove genres request.
func ValidateGenres(request GenresRequest) error {
	return (&validate.Validator{}).
		Positive(FieldSeriesID, request.SeriesID).
		PositiveIDs(FieldGenreIDs, request.GenreIDs).
		IDsAtMost(FieldGenreIDs, request.GenreIDs, MaxColumnInt).
		Err()
}

// ValidateAddTitles checks an add titles request.
func ValidateAddTitles(request AddTitlesRequest) error {
	return (&validate.Validator{}).
		Positive(FieldSeriesID, request.SeriesID).
		NotEmpty(FieldTitles, len(request.Titles)).
		EachMaxLen(FieldTitles, request.Titles, TitleMaxLength).
		Err()
}

// ValidateRemoveTitles checks a remove titles request.
func ValidateRemoveTitles(request RemoveTitlesRequest) error {
	return (&validate.Validator{}).
		Positive(FieldSeriesID, request.SeriesID).
		PositiveIDs(FieldTitleIDs, request.TitleIDs).
		Err()
}

// ValidateID checks a bare series identifier.
func ValidateID(field string, id int64) error {
	return (&validate.Validator{}).Positive(field, id).Err()
}

// ValidateImage checks an image replacement request.
func ValidateImage(request ImageRequest) error {
	return (&validate.Validator{}).
		Positive(FieldSeriesID, request.SeriesID).
		NotEmpty(FieldImage, len(request.Data)).
		Err()
}

// # Shared Rules

type scalars struct {
	chapterNumber *int
	year          *int
	description   *string
	descriptionEN *string
	qualification *float64
}

func checkPayload(validator *validate.Validator, payload Payload, now time.Time) {
	// Identity
	validator.Required(FieldName, payload.Name)
	if strings.TrimSpace(payload.Name) != "" {
		checkName(validator, payload.Name)
	}

	// Demography is mandatory on creation
	if payload.DemographyID == nil {
		validator.Custom(FieldDemographyID, true, "This field is required")
	} else {
		checkDemography(validator, *payload.DemographyID)
	}

	checkScalars(validator, scalars{
		chapterNumber: payload.ChapterNumber,
		year:          payload.Year,
		description:   payload.Description,
		descriptionEN: payload.DescriptionEN,
		qualification: payload.Qualification,
	}, now)
}

func checkDemography(validator *validate.Validator, id int64) {
	validator.Positive(FieldDemographyID, id).AtMost(FieldDemographyID, id, MaxColumnInt)
}

func checkName(validator *validate.Validator, name string) {
	trimmed := strings.TrimSpace(name)
	validator.MinLen(FieldName, trimmed, NameMinLength).MaxLen(FieldName, trimmed, NameMaxLength)
}

func checkScalars(validator *validate.Validator, values scalars, now time.Time) {
	if values.chapterNumber != nil {
		validator.
			Min(FieldChapterNumber, *values.chapterNumber, 0).
			AtMost(FieldChapterNumber, int64(*values.chapterNumber), MaxColumnInt)
	}

	if values.year != nil {
		validator.Range(FieldYear, *values.year, MinYear, now.Year()+YearHorizon)
	}

	if values.description != nil {
		validator.MaxLen(FieldDescription, *values.description, DescriptionMaxLength)
	}

	if values.descriptionEN != nil {
		validator.MaxLen(FieldDescriptionEN, *values.descriptionEN, DescriptionMaxLength)
	}

	if values.qualification != nil {
		validator.FloatRange(FieldQualification, *values.qualification, QualificationMin, QualificationMax)
	}
}
