// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/serieshub/internal/platform/metrics"
)

// UpdateCommand partially updates an existing series.
type UpdateCommand struct {
	reader Reader
	writer Writer
	logger *slog.Logger
}

// NewUpdateCommand constructs an [UpdateCommand].
func NewUpdateCommand(reader Reader, writer Writer, logger *slog.Logger) *UpdateCommand {
	return &UpdateCommand{reader: reader, writer: writer, logger: logger}
}

/*
Execute applies a partial update.

Description: Unlike the create commands this never consults the natural
key. The series must exist; only the members present in the patch are
written. A missing series after the write is a consistency failure.

Parameters:
  - context: context.Context
  - request: UpdateRequest

Returns:
  - *Result: The confirmed series
  - error: Validation, not found, storage or consistency failures
*/
func (command *UpdateCommand) Execute(context context.Context, request UpdateRequest) (result *Result, err error) {
	defer func() { metrics.ObserveCommand(metrics.CommandUpdate, err) }()

	if err := ValidateUpdate(request, time.Now()); err != nil {
		return nil, err
	}

	// Existence check
	if _, err := requireSeries(context, command.reader, request.ID); err != nil {
		return nil, err
	}

	patch := NormalizePatch(request.Patch)
	if err := command.writer.Update(context, request.ID, patch); err != nil {
		return nil, storageFailure("update series", err)
	}

	if err := refreshRank(context, command.writer); err != nil {
		return nil, err
	}

	confirmed, err := confirm(context, command.reader, request.ID, "Series not found after update")
	if err != nil {
		return nil, err
	}

	auditLogger(context, command.logger).Info("series_updated", slog.Int64("series_id", request.ID))

	return &Result{ID: request.ID, Series: confirmed, Message: pathMessage(false)}, nil
}
