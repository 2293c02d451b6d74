// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"encoding/base64"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/serieshub/internal/platform/middleware"
	requestutil "github.com/taibuivan/serieshub/internal/platform/request"
	"github.com/taibuivan/serieshub/internal/platform/respond"
	"github.com/taibuivan/serieshub/internal/platform/sec"
)

// # Handler Implementation

// Handler implements the HTTP layer of the series aggregate. It translates
// requests into command executions and results into JSON envelopes.
type Handler struct {
	service       *Service
	commands      *Commands
	maxImageBytes int64
}

// JSONBodyLimit bounds JSON request bodies that carry no image.
const JSONBodyLimit = 1 << 20

// NewHandler constructs a new series [Handler].
func NewHandler(service *Service, commands *Commands, maxImageBytes int64) *Handler {
	return &Handler{service: service, commands: commands, maxImageBytes: maxImageBytes}
}

// createBodyLimit admits a base64 image of the maximum size plus the other fields.
func (handler *Handler) createBodyLimit() int64 {
	return int64(base64.StdEncoding.EncodedLen(int(handler.maxImageBytes))) + JSONBodyLimit
}

// Routes returns a [chi.Router] configured with the series endpoints.
//
// # Routing Strategy
//
//   - Discovery (Public): Single series lookup.
//   - Management (Restricted): Every write requires [sec.RoleAdmin].
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery Endpoints
	router.Get("/{id}", handler.getSeries)

	// ## Content Management (Admin Protected)
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/", handler.createSeries)
		admin.Post("/complete", handler.createSeriesComplete)
		admin.Patch("/{id}", handler.updateSeries)
		admin.Delete("/{id}", handler.deleteSeries)
		admin.Put("/{id}/image", handler.updateImage)

		// Genres
		admin.Put("/{id}/genres", handler.assignGenres)
		admin.Delete("/{id}/genres", handler.removeGenres)

		// Titles
		admin.Post("/{id}/titles", handler.addTitles)
		admin.Delete("/{id}/titles", handler.removeTitles)
	})

	return router
}

/*
GET /api/v1/series/{id}.

Description: Returns the series with its genres and alternative titles.

Request:
  - id: int64

Response:
  - 200: Series: Success
  - 400: ErrValidation: Malformed id
  - 404: ErrNotFound: Series not found
*/
func (handler *Handler) getSeries(writer http.ResponseWriter, request *http.Request) {
	series, err := handler.service.GetSeries(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, series)
}

// writeResult maps a scalar command result onto 201 or 200 with its warnings.
func writeResult(writer http.ResponseWriter, result *Result) {
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	respond.WithWarnings(writer, status, result, result.Warnings)
}
