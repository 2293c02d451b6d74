// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"net/http"

	"github.com/taibuivan/serieshub/internal/platform/apperr"
	requestutil "github.com/taibuivan/serieshub/internal/platform/request"
	"github.com/taibuivan/serieshub/internal/platform/respond"
)

// # Series Management

/*
POST /api/v1/series.

Description: Creates a series, or refreshes the one with the same name and
year. An optional base64 image is processed best-effort.

Request:
  - body: CreateRequest

Response:
  - 201: Result: Created
  - 200: Result: Existing series updated
  - 400: ErrValidation / ErrInvalidJSON / body larger than the encoded image limit
  - 401/403: Admin role required
*/
func (handler *Handler) createSeries(writer http.ResponseWriter, request *http.Request) {
	var input CreateRequest
	if err := requestutil.DecodeJSON(writer, request, &input, handler.createBodyLimit()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.commands.Create.Execute(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writeResult(writer, result)
}

/*
POST /api/v1/series/complete.

Description: Creates or refreshes a series together with its genre set and
alternative titles.

Request:
  - body: CreateCompleteRequest

Response:
  - 201: Result: Created
  - 200: Result: Existing series updated
  - 400: ErrValidation / ErrInvalidJSON
  - 500: ErrStorage / ErrConsistency
*/
func (handler *Handler) createSeriesComplete(writer http.ResponseWriter, request *http.Request) {
	var input CreateCompleteRequest
	if err := requestutil.DecodeJSON(writer, request, &input, JSONBodyLimit); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.commands.CreateComplete.Execute(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writeResult(writer, result)
}

/*
PATCH /api/v1/series/{id}.

Description: Partially updates a series. Absent members are left untouched.

Request:
  - id: int64
  - body: Patch

Response:
  - 200: Result: Updated
  - 400: ErrValidation: Includes "No fields to update"
  - 404: ErrNotFound: Series not found
*/
func (handler *Handler) updateSeries(writer http.ResponseWriter, request *http.Request) {
	input := UpdateRequest{ID: requestutil.ID(request, "id")}
	if err := requestutil.DecodeJSON(writer, request, &input.Patch, JSONBodyLimit); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.commands.Update.Execute(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writeResult(writer, result)
}

/*
DELETE /api/v1/series/{id}.

Description: Deletes a series and its stored image.

Response:
  - 200: DeleteResult: Deleted, possibly with warnings
  - 404: ErrNotFound: Series not found
*/
func (handler *Handler) deleteSeries(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.commands.Delete.Execute(request.Context(), DeleteRequest{ID: requestutil.ID(request, "id")})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Not found is a result rather than an error, mapped onto 404 here
	if result.NotFound {
		respond.Error(writer, request, apperr.NotFound("Series"))
		return
	}

	respond.WithWarnings(writer, http.StatusOK, result, result.Warnings)
}

/*
PUT /api/v1/series/{id}/image.

Description: Replaces the series image with the raw request body.

Request:
  - id: int64
  - body: image bytes (JPEG, PNG, GIF or WebP)

Response:
  - 200: Result: Image replaced
  - 400: ErrValidation: Empty or oversized body
  - 404: ErrNotFound: Series not found
*/
func (handler *Handler) updateImage(writer http.ResponseWriter, request *http.Request) {
	data, err := requestutil.ReadBody(writer, request, handler.maxImageBytes)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.commands.UpdateImage.Execute(request.Context(), ImageRequest{
		SeriesID: requestutil.ID(request, "id"),
		Data:     data,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	writeResult(writer, result)
}
