// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

// # Command Requests

// Payload is the scalar input of the create commands. Optional members are
// pointers so absence can be told apart from a zero value.
type Payload struct {
	Name          string   `json:"name"`
	ChapterNumber *int     `json:"chapter_number,omitempty"`
	Year          *int     `json:"year,omitempty"`
	Description   *string  `json:"description,omitempty"`
	DescriptionEN *string  `json:"description_en,omitempty"`
	Qualification *float64 `json:"qualification,omitempty"`
	DemographyID  *int64   `json:"demography_id,omitempty"`
	Visible       *bool    `json:"visible,omitempty"`
}

// CreateRequest creates or refreshes a single series, optionally with an image.
type CreateRequest struct {
	Payload

	// Image holds raw upload bytes (base64 in JSON). Empty means no image step.
	Image []byte `json:"image,omitempty"`
}

// CreateCompleteRequest creates or refreshes a series together with its relationships.
type CreateCompleteRequest struct {
	Payload
	Genres []int64  `json:"genres,omitempty"`
	Titles []string `json:"titles,omitempty"`
}

// UpdateRequest partially updates an existing series.
type UpdateRequest struct {
	ID int64 `json:"-"`
	Patch
}

// DeleteRequest removes a series.
type DeleteRequest struct {
	ID int64
}

// GenresRequest assigns or removes genres.
type GenresRequest struct {
	SeriesID int64   `json:"-"`
	GenreIDs []int64 `json:"genre_ids"`
}

// AddTitlesRequest appends alternative titles.
type AddTitlesRequest struct {
	SeriesID int64    `json:"-"`
	Titles   []string `json:"titles"`
}

// RemoveTitlesRequest deletes alternative titles by id.
type RemoveTitlesRequest struct {
	SeriesID int64   `json:"-"`
	TitleIDs []int64 `json:"title_ids"`
}

// ImageRequest replaces the image of a series.
type ImageRequest struct {
	SeriesID int64
	Data     []byte
}
