// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/serieshub/internal/platform/metrics"
)

// CreateCompleteCommand creates or refreshes a series together with its
// genres and alternative titles.
type CreateCompleteCommand struct {
	store  Store
	logger *slog.Logger
}

// NewCreateCompleteCommand constructs a [CreateCompleteCommand].
func NewCreateCompleteCommand(store Store, logger *slog.Logger) *CreateCompleteCommand {
	return &CreateCompleteCommand{store: store, logger: logger}
}

/*
Execute runs the complete create workflow.

Description: The sequence is fixed. Validate, normalise, resolve the
natural key (update or create), replace the genre set, append titles,
refresh rank and confirm. A failure at any storage step is returned as is;
earlier steps are not rolled back.

Parameters:
  - context: context.Context
  - request: CreateCompleteRequest

Returns:
  - *Result: The confirmed series, its id and whether it was created
  - error: Validation (all reasons aggregated), storage or consistency failures
*/
func (command *CreateCompleteCommand) Execute(context context.Context, request CreateCompleteRequest) (result *Result, err error) {
	defer func() { metrics.ObserveCommand(metrics.CommandCreateComplete, err) }()

	// 1. Validate
	if err := ValidateCreateComplete(request, time.Now()); err != nil {
		return nil, err
	}

	// 2. Normalise
	fields := NormalizePayload(request.Payload)
	genreIDs := NormalizeIDs(request.Genres)
	titles := NormalizeTitles(request.Titles)

	// 3. Natural key resolution
	resolved, err := resolveByNaturalKey(context, command.store, command.store, fields)
	if err != nil {
		return nil, err
	}

	// 4. Genre set replacement on both paths
	if len(request.Genres) > 0 {
		if _, err := command.store.AssignGenres(context, resolved.id, genreIDs); err != nil {
			return nil, storageFailure("assign genres", err)
		}
	}

	// 5. Title append on both paths
	if len(titles) > 0 {
		if _, err := command.store.AddTitles(context, resolved.id, titles); err != nil {
			return nil, storageFailure("add titles", err)
		}
	}

	// 6. Rank refresh
	if err := refreshRank(context, command.store); err != nil {
		return nil, err
	}

	// 7. Confirmation
	confirmed, err := confirm(context, command.store, resolved.id, "Series not found after save")
	if err != nil {
		return nil, err
	}

	auditLogger(context, command.logger).Info("series_saved_complete",
		slog.Int64("series_id", resolved.id),
		slog.Bool("created", resolved.created),
		slog.Int("genres", len(genreIDs)),
		slog.Int("titles", len(titles)),
	)

	return &Result{
		ID:      resolved.id,
		Series:  confirmed,
		Created: resolved.created,
		Message: pathMessage(resolved.created),
	}, nil
}
