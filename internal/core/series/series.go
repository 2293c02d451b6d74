// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package series owns every write against the series aggregate of the catalogue.

A series is a published work (manga, manhwa, novel) identified by a numeric id
and, for deduplication purposes, by its natural key: the folded name together
with the release year.

Core Responsibility:

  - Commands: Create, create-complete, update, delete, image replacement and the
    genre and alternative title relationships.
  - Ports: The [Reader], [Writer], [GenreSetWriter] and [TitleListWriter]
    interfaces, implemented by the PostgreSQL store and its Redis cache decorator.
  - Outcomes: Every command returns a typed result that carries the confirmed
    series plus the warnings raised by best-effort steps.

Rank is derived data. It is recomputed by the store after writes and can never
be supplied through a payload.
*/
package series

import (
	"math"
	"time"
)

// # Field Identifiers

// Field names reported in validation failures and structured logs.
const (
	FieldID            = "id"
	FieldSeriesID      = "series_id"
	FieldName          = "name"
	FieldChapterNumber = "chapter_number"
	FieldYear          = "year"
	FieldDescription   = "description"
	FieldDescriptionEN = "description_en"
	FieldQualification = "qualification"
	FieldDemographyID  = "demography_id"
	FieldVisible       = "visible"
	FieldImage         = "image"
	FieldGenreIDs      = "genre_ids"
	FieldTitles        = "titles"
	FieldTitleIDs      = "title_ids"
	FieldFields        = "fields"
)

// # Domain Limits

const (
	// NameMinLength is the shortest accepted series name after trimming.
	NameMinLength = 2

	// NameMaxLength is the longest accepted series name after trimming.
	NameMaxLength = 200

	// DescriptionMaxLength bounds both description columns.
	DescriptionMaxLength = 5000

	// MinYear is the earliest release year accepted.
	MinYear = 1900

	// YearHorizon is how many years past the current one a release may be announced.
	YearHorizon = 5

	// QualificationMin and QualificationMax bound the editorial score.
	QualificationMin = 0.0
	QualificationMax = 10.0

	// TitleMaxLength bounds an alternative title.
	TitleMaxLength = 500

	// MaxColumnInt is the largest value an INTEGER column stores. It bounds
	// chapter numbers, genre ids and demography ids.
	MaxColumnInt int64 = math.MaxInt32
)

// # Domain Entities

// Series is the hydrated aggregate as confirmed by the store.
type Series struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	ChapterNumber int       `json:"chapter_number"`
	Year          *int      `json:"year,omitempty"`
	Description   string    `json:"description"`
	DescriptionEN string    `json:"description_en"`
	Qualification float64   `json:"qualification"`
	DemographyID  int64     `json:"demography_id"`
	Visible       bool      `json:"visible"`
	Image         *string   `json:"image,omitempty"`
	Rank          int       `json:"rank"`
	Genres        []Genre   `json:"genres"`
	Titles        []Title   `json:"titles"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HasImage reports whether an image path is currently referenced.
func (series *Series) HasImage() bool {
	return series.Image != nil && *series.Image != ""
}

// Genre is a catalogue genre linked to a series.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Title is an alternative name of a series.
type Title struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// # Write Payloads

/*
Fields is the complete, normalised scalar payload written on creation.

It deliberately has no rank and no image member: rank is recomputed by the
store and the image path is only ever set by the image pipeline.
*/
type Fields struct {
	Name          string
	ChapterNumber int
	Year          *int
	Description   string
	DescriptionEN string
	Qualification float64
	DemographyID  int64
	Visible       bool
}

// Patch converts the full payload into an update that overwrites every field.
func (fields Fields) Patch() Patch {
	return Patch{
		Name:          &fields.Name,
		ChapterNumber: &fields.ChapterNumber,
		Year:          fields.Year,
		Description:   &fields.Description,
		DescriptionEN: &fields.DescriptionEN,
		Qualification: &fields.Qualification,
		DemographyID:  &fields.DemographyID,
		Visible:       &fields.Visible,
	}
}

// Patch is a partial update. Nil members are left untouched by the store.
type Patch struct {
	Name          *string  `json:"name,omitempty"`
	ChapterNumber *int     `json:"chapter_number,omitempty"`
	Year          *int     `json:"year,omitempty"`
	Description   *string  `json:"description,omitempty"`
	DescriptionEN *string  `json:"description_en,omitempty"`
	Qualification *float64 `json:"qualification,omitempty"`
	DemographyID  *int64   `json:"demography_id,omitempty"`
	Visible       *bool    `json:"visible,omitempty"`
}

// IsEmpty reports whether the patch would change nothing.
func (patch Patch) IsEmpty() bool {
	return patch.Name == nil &&
		patch.ChapterNumber == nil &&
		patch.Year == nil &&
		patch.Description == nil &&
		patch.DescriptionEN == nil &&
		patch.Qualification == nil &&
		patch.DemographyID == nil &&
		patch.Visible == nil
}
