// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/taibuivan/serieshub/internal/platform/database/schema"
	"github.com/taibuivan/serieshub/internal/platform/dberr"
)

// # Relationship Writes

/*
AssignGenres replaces the genre set inside one transaction.

Description: Implements the "clear and insert" strategy. Every existing link
is removed first, then the new set is queued on a pgx.Batch. An empty set
leaves the series without genres.

Parameters:
  - context: context.Context
  - seriesID: int64
  - genreIDs: []int64

Returns:
  - bool: True once the transaction commits
  - error: Execution or commit failures
*/
func (repository *postgresStore) AssignGenres(context context.Context, seriesID int64, genreIDs []int64) (bool, error) {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return false, fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	if err := replaceJunction(context, transaction, schema.SeriesGenre.Table, schema.SeriesGenre.SeriesID, schema.SeriesGenre.GenreID, seriesID, genreIDs); err != nil {
		return false, err
	}

	if err := transaction.Commit(context); err != nil {
		return false, fmt.Errorf("postgres: failed to commit genre assignment: %w", err)
	}

	return true, nil
}

// RemoveGenres deletes the given links and reports whether any existed.
func (repository *postgresStore) RemoveGenres(context context.Context, seriesID int64, genreIDs []int64) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 AND %s = ANY($2)",
		schema.SeriesGenre.Table, schema.SeriesGenre.SeriesID, schema.SeriesGenre.GenreID)

	response, err := repository.pool.Exec(context, query, seriesID, genreIDs)
	if err != nil {
		return false, fmt.Errorf("postgres: failed to remove genres: %w", err)
	}

	return response.RowsAffected() > 0, nil
}

/*
AddTitles appends the titles in one transaction.

Description: Existing titles are not consulted. Each title becomes a new row
with its own id.

Parameters:
  - context: context.Context
  - seriesID: int64
  - titles: []string

Returns:
  - bool: True once the transaction commits
  - error: Execution or commit failures
*/
func (repository *postgresStore) AddTitles(context context.Context, seriesID int64, titles []string) (bool, error) {
	if len(titles) == 0 {
		return false, nil
	}

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return false, fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)",
		schema.CoreSeriesTitle.Table, schema.CoreSeriesTitle.SeriesID, schema.CoreSeriesTitle.Name)

	batch := &pgx.Batch{}
	for _, title := range titles {
		batch.Queue(query, seriesID, title)
	}

	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		return false, fmt.Errorf("postgres: failed to insert titles: %w", err)
	}

	if err := transaction.Commit(context); err != nil {
		return false, fmt.Errorf("postgres: failed to commit titles: %w", err)
	}

	return true, nil
}

// RemoveTitles deletes titles of the series by id.
func (repository *postgresStore) RemoveTitles(context context.Context, seriesID int64, titleIDs []int64) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1 AND %s = ANY($2)",
		schema.CoreSeriesTitle.Table, schema.CoreSeriesTitle.SeriesID, schema.CoreSeriesTitle.ID)

	response, err := repository.pool.Exec(context, query, seriesID, titleIDs)
	if err != nil {
		return false, fmt.Errorf("postgres: failed to remove titles: %w", err)
	}

	return response.RowsAffected() > 0, nil
}

// replaceJunction clears every row of the owner and batch-inserts the new values.
func replaceJunction(context context.Context, transaction pgx.Tx, table, ownerColumn, valueColumn string, ownerID int64, values []int64) error {
	clearQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, ownerColumn)
	if _, err := transaction.Exec(context, clearQuery, ownerID); err != nil {
		return fmt.Errorf("postgres: failed to clear %s: %w", table, err)
	}

	if len(values) == 0 {
		return nil
	}

	insertQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)", table, ownerColumn, valueColumn)
	batch := &pgx.Batch{}
	for _, value := range values {
		batch.Queue(insertQuery, ownerID, value)
	}

	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return dberr.Wrap(err, "Series", "insert into "+table)
		}
		return fmt.Errorf("postgres: failed to batch insert into %s: %w", table, err)
	}

	return nil
}
