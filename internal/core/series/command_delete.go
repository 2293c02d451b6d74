// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/serieshub/internal/platform/apperr"
	"github.com/taibuivan/serieshub/internal/platform/metrics"
)

// ErrNoRowsAffected is the cause reported when a delete matched no row.
var ErrNoRowsAffected = errors.New("no rows affected")

// DeleteCommand removes a series and, best-effort, its stored image.
type DeleteCommand struct {
	reader Reader
	writer Writer
	images ImageService
	logger *slog.Logger
}

// NewDeleteCommand constructs a [DeleteCommand].
func NewDeleteCommand(reader Reader, writer Writer, images ImageService, logger *slog.Logger) *DeleteCommand {
	return &DeleteCommand{reader: reader, writer: writer, images: images, logger: logger}
}

/*
Execute deletes a series.

Description: An unknown id yields a result with NotFound set and no error;
the image service is not touched in that case. The image is deleted before
the row, and a failure there only adds a warning. Rank is not refreshed.

Parameters:
  - context: context.Context
  - request: DeleteRequest

Returns:
  - *DeleteResult: The outcome, including the not-found case
  - error: Validation or storage failures
*/
func (command *DeleteCommand) Execute(context context.Context, request DeleteRequest) (result *DeleteResult, err error) {
	defer func() {
		if result != nil && result.NotFound {
			metrics.ObserveNotFound(metrics.CommandDelete)
			return
		}
		metrics.ObserveCommand(metrics.CommandDelete, err)
	}()

	if err := ValidateID(FieldID, request.ID); err != nil {
		return nil, err
	}

	existing, err := command.reader.FindByID(context, request.ID)
	if err != nil {
		return nil, storageFailure("load series", err)
	}

	// Absence is a normal outcome here
	if existing == nil {
		return &DeleteResult{ID: request.ID, NotFound: true, Message: "Series not found"}, nil
	}

	result = &DeleteResult{ID: request.ID}

	// Best-effort image removal
	if existing.HasImage() {
		if warning := deleteImageBestEffort(context, command.images, command.logger, request.ID, *existing.Image); warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
	}

	deleted, err := command.writer.Delete(context, request.ID)
	if err != nil {
		return nil, storageFailure("delete series", err)
	}
	if !deleted {
		return nil, apperr.Storage("delete series", ErrNoRowsAffected)
	}

	auditLogger(context, command.logger).Info("series_deleted", slog.Int64("series_id", request.ID))

	result.Deleted = true
	result.Message = "Series deleted successfully"
	return result, nil
}
