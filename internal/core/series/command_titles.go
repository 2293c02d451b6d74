// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/serieshub/internal/platform/apperr"
	"github.com/taibuivan/serieshub/internal/platform/metrics"
)

// AddTitlesCommand appends alternative titles to a series.
type AddTitlesCommand struct {
	reader Reader
	titles TitleListWriter
	logger *slog.Logger
}

// NewAddTitlesCommand constructs an [AddTitlesCommand].
func NewAddTitlesCommand(reader Reader, titles TitleListWriter, logger *slog.Logger) *AddTitlesCommand {
	return &AddTitlesCommand{reader: reader, titles: titles, logger: logger}
}

/*
Execute appends the requested titles.

Description: Titles are trimmed, blanks dropped and repeats within the
request collapsed. Titles already stored are not compared against, so the
same name may be appended again by a later request.

Parameters:
  - context: context.Context
  - request: AddTitlesRequest

Returns:
  - *RelationResult: Message naming the series
  - error: Validation (including an all-blank list), not found or storage failures
*/
func (command *AddTitlesCommand) Execute(context context.Context, request AddTitlesRequest) (result *RelationResult, err error) {
	defer func() { metrics.ObserveCommand(metrics.CommandAddTitles, err) }()

	if err := ValidateAddTitles(request); err != nil {
		return nil, err
	}

	if _, err := requireSeries(context, command.reader, request.SeriesID); err != nil {
		return nil, err
	}

	titles := NormalizeTitles(request.Titles)
	if len(titles) == 0 {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   FieldTitles,
			Message: "Must contain at least one non-blank title",
		})
	}

	applied, err := command.titles.AddTitles(context, request.SeriesID, titles)
	if err != nil {
		return nil, storageFailure("add titles", err)
	}

	auditLogger(context, command.logger).Info("series_titles_added",
		slog.Int64("series_id", request.SeriesID),
		slog.Int("titles", len(titles)),
	)

	return &RelationResult{
		SeriesID: request.SeriesID,
		Applied:  applied,
		Message:  fmt.Sprintf("Titles added to series %d", request.SeriesID),
	}, nil
}

// RemoveTitlesCommand deletes alternative titles by id.
type RemoveTitlesCommand struct {
	reader Reader
	titles TitleListWriter
	logger *slog.Logger
}

// NewRemoveTitlesCommand constructs a [RemoveTitlesCommand].
func NewRemoveTitlesCommand(reader Reader, titles TitleListWriter, logger *slog.Logger) *RemoveTitlesCommand {
	return &RemoveTitlesCommand{reader: reader, titles: titles, logger: logger}
}

// Execute deletes the requested titles of the series.
func (command *RemoveTitlesCommand) Execute(context context.Context, request RemoveTitlesRequest) (result *RelationResult, err error) {
	defer func() { metrics.ObserveCommand(metrics.CommandRemoveTitles, err) }()

	if err := ValidateRemoveTitles(request); err != nil {
		return nil, err
	}

	if _, err := requireSeries(context, command.reader, request.SeriesID); err != nil {
		return nil, err
	}

	titleIDs := NormalizeIDs(request.TitleIDs)
	applied, err := command.titles.RemoveTitles(context, request.SeriesID, titleIDs)
	if err != nil {
		return nil, storageFailure("remove titles", err)
	}

	auditLogger(context, command.logger).Info("series_titles_removed",
		slog.Int64("series_id", request.SeriesID),
		slog.Bool("applied", applied),
	)

	return &RelationResult{
		SeriesID: request.SeriesID,
		Applied:  applied,
		Message:  fmt.Sprintf("Titles removed from series %d", request.SeriesID),
	}, nil
}
