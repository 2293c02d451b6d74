// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"net/http"

	requestutil "github.com/taibuivan/serieshub/internal/platform/request"
	"github.com/taibuivan/serieshub/internal/platform/respond"
)

// # Genres & Titles

/*
PUT /api/v1/series/{id}/genres.

Description: Replaces the whole genre set of the series.

Request:
  - id: int64
  - body: { genre_ids: []int64 }

Response:
  - 200: RelationResult: Success
  - 400: ErrValidation: Empty list or invalid ids
  - 404: ErrNotFound: Series not found
*/
func (handler *Handler) assignGenres(writer http.ResponseWriter, request *http.Request) {
	input := GenresRequest{SeriesID: requestutil.ID(request, "id")}
	if err := requestutil.DecodeJSON(writer, request, &input, JSONBodyLimit); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.commands.AssignGenres.Execute(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
DELETE /api/v1/series/{id}/genres.

Request:
  - id: int64
  - body: { genre_ids: []int64 }

Response:
  - 200: RelationResult: Success
  - 400: ErrValidation
  - 404: ErrNotFound
*/
func (handler *Handler) removeGenres(writer http.ResponseWriter, request *http.Request) {
	input := GenresRequest{SeriesID: requestutil.ID(request, "id")}
	if err := requestutil.DecodeJSON(writer, request, &input, JSONBodyLimit); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.commands.RemoveGenres.Execute(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
POST /api/v1/series/{id}/titles.

Description: Appends alternative titles. Repeats within the body collapse;
titles already stored are not compared against.

Request:
  - id: int64
  - body: { titles: []string }

Response:
  - 200: RelationResult: Success
  - 400: ErrValidation
  - 404: ErrNotFound
*/
func (handler *Handler) addTitles(writer http.ResponseWriter, request *http.Request) {
	input := AddTitlesRequest{SeriesID: requestutil.ID(request, "id")}
	if err := requestutil.DecodeJSON(writer, request, &input, JSONBodyLimit); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.commands.AddTitles.Execute(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// DELETE /api/v1/series/{id}/titles removes titles by id.
func (handler *Handler) removeTitles(writer http.ResponseWriter, request *http.Request) {
	input := RemoveTitlesRequest{SeriesID: requestutil.ID(request, "id")}
	if err := requestutil.DecodeJSON(writer, request, &input, JSONBodyLimit); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.commands.RemoveTitles.Execute(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}
