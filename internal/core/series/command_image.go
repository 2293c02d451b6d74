// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"context"
	"log/slog"

	"github.com/taibuivan/serieshub/internal/platform/apperr"
	"github.com/taibuivan/serieshub/internal/platform/metrics"
)

// UpdateImageCommand replaces the image of an existing series.
type UpdateImageCommand struct {
	reader Reader
	writer Writer
	images ImageService
	logger *slog.Logger
}

// NewUpdateImageCommand constructs an [UpdateImageCommand].
func NewUpdateImageCommand(reader Reader, writer Writer, images ImageService, logger *slog.Logger) *UpdateImageCommand {
	return &UpdateImageCommand{reader: reader, writer: writer, images: images, logger: logger}
}

/*
Execute processes, stores and attaches a new image.

Description: Processing is the purpose of this command, so a failure there
is fatal. Only the removal of the previous image is best-effort. Rank does
not depend on the image and is not refreshed.

Parameters:
  - context: context.Context
  - request: ImageRequest

Returns:
  - *Result: The confirmed series carrying the new path
  - error: Validation, not found, storage or consistency failures
*/
func (command *UpdateImageCommand) Execute(context context.Context, request ImageRequest) (result *Result, err error) {
	defer func() { metrics.ObserveCommand(metrics.CommandUpdateImage, err) }()

	if err := ValidateImage(request); err != nil {
		return nil, err
	}

	existing, err := requireSeries(context, command.reader, request.SeriesID)
	if err != nil {
		return nil, err
	}

	path, err := command.images.ProcessAndSave(context, request.Data, request.SeriesID)
	if err != nil {
		return nil, storageFailure("process image", err)
	}

	result = &Result{ID: request.SeriesID, Message: "Image updated successfully"}

	applied, err := command.writer.UpdateImage(context, request.SeriesID, path)
	if err != nil || !applied {
		// The new object would be orphaned
		deleteImageBestEffort(context, command.images, command.logger, request.SeriesID, path)
		if err != nil {
			return nil, storageFailure("update series image", err)
		}
		return nil, apperr.NotFound("Series")
	}

	// Previous image
	if existing.HasImage() && *existing.Image != path {
		if warning := deleteImageBestEffort(context, command.images, command.logger, request.SeriesID, *existing.Image); warning != "" {
			result.warn(warning)
		}
	}

	confirmed, err := confirm(context, command.reader, request.SeriesID, "Series not found after image update")
	if err != nil {
		return nil, err
	}
	result.Series = confirmed

	auditLogger(context, command.logger).Info("series_image_updated",
		slog.Int64("series_id", request.SeriesID),
		slog.String("path", path),
	)

	return result, nil
}
