// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/serieshub/internal/platform/metrics"
)

// AssignGenresCommand replaces the genre set of a series.
type AssignGenresCommand struct {
	reader Reader
	genres GenreSetWriter
	logger *slog.Logger
}

// NewAssignGenresCommand constructs an [AssignGenresCommand].
func NewAssignGenresCommand(reader Reader, genres GenreSetWriter, logger *slog.Logger) *AssignGenresCommand {
	return &AssignGenresCommand{reader: reader, genres: genres, logger: logger}
}

/*
Execute replaces every genre link of the series with the requested set.

Description: Duplicates are accepted and collapsed before the write. A
second assign replaces the first rather than merging with it.

Parameters:
  - context: context.Context
  - request: GenresRequest

Returns:
  - *RelationResult: Message naming the series
  - error: Validation, not found or storage failures
*/
func (command *AssignGenresCommand) Execute(context context.Context, request GenresRequest) (result *RelationResult, err error) {
	defer func() { metrics.ObserveCommand(metrics.CommandAssignGenres, err) }()

	if err := ValidateGenres(request); err != nil {
		return nil, err
	}

	if _, err := requireSeries(context, command.reader, request.SeriesID); err != nil {
		return nil, err
	}

	genreIDs := NormalizeIDs(request.GenreIDs)
	applied, err := command.genres.AssignGenres(context, request.SeriesID, genreIDs)
	if err != nil {
		return nil, storageFailure("assign genres", err)
	}

	auditLogger(context, command.logger).Info("series_genres_assigned",
		slog.Int64("series_id", request.SeriesID),
		slog.Int("genres", len(genreIDs)),
	)

	return &RelationResult{
		SeriesID: request.SeriesID,
		Applied:  applied,
		Message:  fmt.Sprintf("Genres assigned to series %d", request.SeriesID),
	}, nil
}

// RemoveGenresCommand unlinks genres from a series.
type RemoveGenresCommand struct {
	reader Reader
	genres GenreSetWriter
	logger *slog.Logger
}

// NewRemoveGenresCommand constructs a [RemoveGenresCommand].
func NewRemoveGenresCommand(reader Reader, genres GenreSetWriter, logger *slog.Logger) *RemoveGenresCommand {
	return &RemoveGenresCommand{reader: reader, genres: genres, logger: logger}
}

// Execute subtracts the requested genres from the series' set.
func (command *RemoveGenresCommand) Execute(context context.Context, request GenresRequest) (result *RelationResult, err error) {
	defer func() { metrics.ObserveCommand(metrics.CommandRemoveGenres, err) }()

	if err := ValidateGenres(request); err != nil {
		return nil, err
	}

	if _, err := requireSeries(context, command.reader, request.SeriesID); err != nil {
		return nil, err
	}

	genreIDs := NormalizeIDs(request.GenreIDs)
	applied, err := command.genres.RemoveGenres(context, request.SeriesID, genreIDs)
	if err != nil {
		return nil, storageFailure("remove genres", err)
	}

	auditLogger(context, command.logger).Info("series_genres_removed",
		slog.Int64("series_id", request.SeriesID),
		slog.Bool("applied", applied),
	)

	return &RelationResult{
		SeriesID: request.SeriesID,
		Applied:  applied,
		Message:  fmt.Sprintf("Genres removed from series %d", request.SeriesID),
	}, nil
}
