// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"context"
	"log/slog"

	"github.com/taibuivan/serieshub/internal/platform/apperr"
	"github.com/taibuivan/serieshub/internal/platform/ctxutil"
	"github.com/taibuivan/serieshub/internal/platform/metrics"
)

// # Command Registry

/*
Commands groups one handler per write use case.

Every handler is stateless: it validates, normalises and then drives the
store strictly step by step, each step depending on the previous one. No
handler retries or compensates a failed step.
*/
type Commands struct {
	Create         *CreateCommand
	CreateComplete *CreateCompleteCommand
	Update         *UpdateCommand
	Delete         *DeleteCommand
	AssignGenres   *AssignGenresCommand
	RemoveGenres   *RemoveGenresCommand
	AddTitles      *AddTitlesCommand
	RemoveTitles   *RemoveTitlesCommand
	UpdateImage    *UpdateImageCommand
}

// NewCommands wires every handler against the same store and image service.
func NewCommands(store Store, images ImageService, logger *slog.Logger) *Commands {
	return &Commands{
		Create:         NewCreateCommand(store, store, images, logger),
		CreateComplete: NewCreateCompleteCommand(store, logger),
		Update:         NewUpdateCommand(store, store, logger),
		Delete:         NewDeleteCommand(store, store, images, logger),
		AssignGenres:   NewAssignGenresCommand(store, store, logger),
		RemoveGenres:   NewRemoveGenresCommand(store, store, logger),
		AddTitles:      NewAddTitlesCommand(store, store, logger),
		RemoveTitles:   NewRemoveTitlesCommand(store, store, logger),
		UpdateImage:    NewUpdateImageCommand(store, store, images, logger),
	}
}

// # Shared Steps

// storageFailure wraps a port error, preserving its cause. Application
// errors raised by the store itself pass through unchanged.
func storageFailure(action string, err error) error {
	if apperr.IsAppError(err) {
		return err
	}
	return apperr.Storage(action, err)
}

// requireSeries loads a series and turns absence into a not-found failure.
func requireSeries(context context.Context, reader Reader, id int64) (*Series, error) {
	existing, err := reader.FindByID(context, id)
	if err != nil {
		return nil, storageFailure("load series", err)
	}
	if existing == nil {
		return nil, apperr.NotFound("Series")
	}
	return existing, nil
}

// confirm re-reads a series right after a write. Absence means the write
// and read paths disagree, which is a consistency failure.
func confirm(context context.Context, reader Reader, id int64, missing string) (*Series, error) {
	confirmed, err := reader.FindByID(context, id)
	if err != nil {
		return nil, storageFailure("confirm series", err)
	}
	if confirmed == nil {
		return nil, apperr.Consistency(missing)
	}
	return confirmed, nil
}

// refreshRank triggers the catalogue-wide rank recomputation.
func refreshRank(context context.Context, writer Writer) error {
	if err := writer.UpdateRank(context); err != nil {
		return storageFailure("refresh series rank", err)
	}
	return nil
}

// resolution records which path the natural-key lookup chose.
type resolution struct {
	id       int64
	created  bool
	existing *Series
}

/*
resolveByNaturalKey writes the payload onto the series that shares its
natural key, or creates a new series when none does.

Description: The lookup and the write are separate calls and are not
serialised. Two concurrent requests with the same key may both take the
create path.

Parameters:
  - context: context.Context
  - reader: Reader
  - writer: Writer
  - fields: Fields (Normalised payload)

Returns:
  - resolution: The resolved id and the chosen path
  - error: Storage failures
*/
func resolveByNaturalKey(context context.Context, reader Reader, writer Writer, fields Fields) (resolution, error) {

	// Natural key lookup
	existing, err := reader.FindByNameAndYear(context, fields.Name, fields.Year)
	if err != nil {
		return resolution{}, storageFailure("look up series by name and year", err)
	}

	// Update path: every scalar is overwritten with the new payload
	if existing != nil {
		if err := writer.Update(context, existing.ID, fields.Patch()); err != nil {
			return resolution{}, storageFailure("update series", err)
		}
		return resolution{id: existing.ID, existing: existing}, nil
	}

	// Create path
	id, err := writer.Create(context, fields)
	if err != nil {
		return resolution{}, storageFailure("create series", err)
	}
	return resolution{id: id, created: true}, nil
}

// deleteImageBestEffort removes a stored image. A failure is logged and
// reported back as a warning message, never as an error.
func deleteImageBestEffort(context context.Context, images ImageService, logger *slog.Logger, seriesID int64, path string) string {
	if err := images.Delete(context, path); err != nil {
		metrics.BestEffortFailure(metrics.StepImageDelete)
		logger.Warn("series_image_delete_failed",
			slog.Int64("series_id", seriesID),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return "Failed to delete image " + path
	}
	return ""
}

// auditLogger prefers the request logger so audit events carry request_id and user_id.
func auditLogger(context context.Context, fallback *slog.Logger) *slog.Logger {
	return ctxutil.LoggerOr(context, fallback)
}

func pathMessage(created bool) string {
	if created {
		return "Series created successfully"
	}
	return "Series updated successfully"
}
