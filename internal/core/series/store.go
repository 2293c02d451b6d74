// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import "context"

// # Persistence Ports

// Reader resolves series for the command handlers.
type Reader interface {

	/*
		FindByID returns the hydrated series including genres and titles.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *Series: The series, or nil when no row matches
		  - error: Storage failures only; absence is not an error
	*/
	FindByID(context context.Context, id int64) (*Series, error)

	/*
		FindByNameAndYear resolves a series by its natural key.

		Description: The name is compared through [NameKey], so case and
		whitespace differences do not create duplicates. A nil year only
		matches series without a year.

		Parameters:
		  - context: context.Context
		  - name: string (Normalised name)
		  - year: *int

		Returns:
		  - *Series: The oldest matching series, or nil
		  - error: Storage failures
	*/
	FindByNameAndYear(context context.Context, name string, year *int) (*Series, error)
}

// Writer persists the scalar side of the aggregate.
type Writer interface {

	/*
		Create inserts a new series row.

		Parameters:
		  - context: context.Context
		  - fields: Fields (Normalised payload, rank excluded)

		Returns:
		  - int64: The assigned id
		  - error: Persistence failure
	*/
	Create(context context.Context, fields Fields) (int64, error)

	/*
		Update applies the non-nil members of the patch.

		Parameters:
		  - context: context.Context
		  - id: int64
		  - patch: Patch

		Returns:
		  - error: apperr.NotFound when the row vanished, or persistence failures
	*/
	Update(context context.Context, id int64, patch Patch) error

	// Delete removes the series and reports whether a row was affected.
	Delete(context context.Context, id int64) (bool, error)

	// UpdateImage stores the image path and reports whether a row was affected.
	UpdateImage(context context.Context, id int64, path string) (bool, error)

	// UpdateRank recomputes the rank column for the whole catalogue.
	UpdateRank(context context.Context) error
}

// GenreSetWriter manages genres with replace-set semantics.
type GenreSetWriter interface {

	/*
		AssignGenres replaces the full genre set of a series.

		Description: Runs as a single transaction. An empty set clears every
		link of the series.

		Parameters:
		  - context: context.Context
		  - seriesID: int64
		  - genreIDs: []int64 (Deduplicated, positive ids)

		Returns:
		  - bool: Whether the write was applied
		  - error: Persistence failure
	*/
	AssignGenres(context context.Context, seriesID int64, genreIDs []int64) (bool, error)

	// RemoveGenres unlinks the given genres and reports whether any link existed.
	RemoveGenres(context context.Context, seriesID int64, genreIDs []int64) (bool, error)
}

// TitleListWriter manages alternative titles with append-list semantics.
type TitleListWriter interface {

	/*
		AddTitles appends the titles to the series.

		Parameters:
		  - context: context.Context
		  - seriesID: int64
		  - titles: []string (Trimmed, non-empty, deduplicated)

		Returns:
		  - bool: Whether the write was applied
		  - error: Persistence failure
	*/
	AddTitles(context context.Context, seriesID int64, titles []string) (bool, error)

	// RemoveTitles deletes titles by id and reports whether any row was removed.
	RemoveTitles(context context.Context, seriesID int64, titleIDs []int64) (bool, error)
}

// Store is the full persistence surface used by [Commands].
type Store interface {
	Reader
	Writer
	GenreSetWriter
	TitleListWriter
}

// # Image Port

// ImageService turns uploaded bytes into a stored image path.
type ImageService interface {

	/*
		ProcessAndSave decodes, resizes and stores the image of a series.

		Parameters:
		  - context: context.Context
		  - data: []byte (Raw upload)
		  - seriesID: int64

		Returns:
		  - string: The stored image path
		  - error: Decode or storage failure
	*/
	ProcessAndSave(context context.Context, data []byte, seriesID int64) (string, error)

	// Delete removes a stored image. Deleting a missing object is not an error.
	Delete(context context.Context, path string) error
}
