// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/serieshub/internal/platform/metrics"
)

// CreateCommand creates a series, or refreshes the one sharing its natural
// key, and optionally attaches an image.
type CreateCommand struct {
	reader Reader
	writer Writer
	images ImageService
	logger *slog.Logger
}

// NewCreateCommand constructs a [CreateCommand].
func NewCreateCommand(reader Reader, writer Writer, images ImageService, logger *slog.Logger) *CreateCommand {
	return &CreateCommand{reader: reader, writer: writer, images: images, logger: logger}
}

/*
Execute runs the create-or-update workflow.

Description: After the natural-key write, supplied image bytes are processed
and attached. That step is best-effort: its failure becomes a warning on the
result and the series write still succeeds. Rank is always refreshed before
the confirmation fetch.

Parameters:
  - context: context.Context
  - request: CreateRequest

Returns:
  - *Result: The confirmed series with the chosen path
  - error: Validation, storage or consistency failures
*/
func (command *CreateCommand) Execute(context context.Context, request CreateRequest) (result *Result, err error) {
	defer func() { metrics.ObserveCommand(metrics.CommandCreate, err) }()

	// Validation happens before any storage access
	if err := ValidateCreate(request.Payload, time.Now()); err != nil {
		return nil, err
	}

	fields := NormalizePayload(request.Payload)

	// Natural key resolution
	resolved, err := resolveByNaturalKey(context, command.reader, command.writer, fields)
	if err != nil {
		return nil, err
	}

	result = &Result{ID: resolved.id, Created: resolved.created, Message: pathMessage(resolved.created)}

	// Best-effort image attachment
	var imagePath string
	if len(request.Image) > 0 {
		imagePath = command.attachImage(context, resolved.id, request.Image, result)
	}

	// Replaced images are released once the new path is stored
	if imagePath != "" && resolved.existing != nil && resolved.existing.HasImage() && *resolved.existing.Image != imagePath {
		if warning := deleteImageBestEffort(context, command.images, command.logger, resolved.id, *resolved.existing.Image); warning != "" {
			result.warn(warning)
		}
	}

	if err := refreshRank(context, command.writer); err != nil {
		return nil, err
	}

	confirmed, err := confirm(context, command.reader, resolved.id, "Series not found after save")
	if err != nil {
		return nil, err
	}

	if imagePath != "" {
		confirmed.Image = &imagePath
	}
	result.Series = confirmed

	auditLogger(context, command.logger).Info("series_saved",
		slog.Int64("series_id", resolved.id),
		slog.Bool("created", resolved.created),
		slog.Int("warnings", len(result.Warnings)),
	)

	return result, nil
}

// attachImage processes and stores the image, then records its path. Any
// failure is logged, counted and added to the result as a warning.
func (command *CreateCommand) attachImage(context context.Context, seriesID int64, data []byte, result *Result) string {
	path, err := command.images.ProcessAndSave(context, data, seriesID)
	if err != nil {
		metrics.BestEffortFailure(metrics.StepImageProcess)
		command.logger.Warn("series_image_process_failed",
			slog.Int64("series_id", seriesID),
			slog.Any("error", err),
		)
		result.warn("Image could not be processed")
		return ""
	}

	applied, err := command.writer.UpdateImage(context, seriesID, path)
	if err != nil || !applied {
		metrics.BestEffortFailure(metrics.StepImageAttach)
		command.logger.Warn("series_image_attach_failed",
			slog.Int64("series_id", seriesID),
			slog.String("path", path),
			slog.Any("error", err),
		)
		result.warn("Image could not be attached")

		// The stored object is unreferenced now
		if warning := deleteImageBestEffort(context, command.images, command.logger, seriesID, path); warning != "" {
			result.warn(warning)
		}
		return ""
	}

	return path
}
