// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/serieshub/internal/platform/apperr"
	"github.com/taibuivan/serieshub/internal/platform/database/schema"
	"github.com/taibuivan/serieshub/internal/platform/dberr"
)

// # PostgreSQL Store

type postgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore returns the PostgreSQL implementation of [Store].
func NewPostgresStore(pool *pgxpool.Pool) Store {
	return &postgresStore{pool: pool}
}

// selectSeries is the hydrated projection shared by every lookup. Genres and
// titles are aggregated into JSON arrays so one round trip returns the aggregate.
var selectSeries = fmt.Sprintf(`
	SELECT
		s.%s, s.%s, s.%s, s.%s, s.%s, s.%s,
		s.%s, s.%s, s.%s, s.%s, s.%s,
		s.%s, s.%s,
		COALESCE((
			SELECT json_agg(json_build_object('id', g.%s, 'name', g.%s) ORDER BY g.%s)
			FROM %s g
			JOIN %s sg ON g.%s = sg.%s
			WHERE sg.%s = s.%s
		), '[]') AS genres,
		COALESCE((
			SELECT json_agg(json_build_object('id', t.%s, 'name', t.%s) ORDER BY t.%s)
			FROM %s t
			WHERE t.%s = s.%s
		), '[]') AS titles
	FROM %s s`,
	schema.CoreSeries.ID,
	schema.CoreSeries.Name,
	schema.CoreSeries.ChapterNumber,
	schema.CoreSeries.Year,
	schema.CoreSeries.Description,
	schema.CoreSeries.DescriptionEN,
	schema.CoreSeries.Qualification,
	schema.CoreSeries.DemographyID,
	schema.CoreSeries.Visible,
	schema.CoreSeries.Image,
	schema.CoreSeries.Rank,
	schema.CoreSeries.CreatedAt,
	schema.CoreSeries.UpdatedAt,
	schema.RefGenre.ID, schema.RefGenre.Name, schema.RefGenre.ID,
	schema.RefGenre.Table,
	schema.SeriesGenre.Table, schema.RefGenre.ID, schema.SeriesGenre.GenreID,
	schema.SeriesGenre.SeriesID, schema.CoreSeries.ID,
	schema.CoreSeriesTitle.ID, schema.CoreSeriesTitle.Name, schema.CoreSeriesTitle.ID,
	schema.CoreSeriesTitle.Table,
	schema.CoreSeriesTitle.SeriesID, schema.CoreSeries.ID,
	schema.CoreSeries.Table,
)

/*
FindByID retrieves the hydrated series.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *Series: The series, or nil when no row matches
  - error: Query or decode failures
*/
func (repository *postgresStore) FindByID(context context.Context, id int64) (*Series, error) {
	query := fmt.Sprintf("%s WHERE s.%s = $1", selectSeries, schema.CoreSeries.ID)
	return repository.findOne(context, query, id)
}

/*
FindByNameAndYear resolves the natural key.

Description: Compares the stored name key, so the lookup is insensitive to
case and whitespace runs. `IS NOT DISTINCT FROM` lets a nil year match rows
without a year. When concurrent creates produced duplicates, the oldest row wins.

Parameters:
  - context: context.Context
  - name: string
  - year: *int

Returns:
  - *Series: The matching series, or nil
  - error: Query or decode failures
*/
func (repository *postgresStore) FindByNameAndYear(context context.Context, name string, year *int) (*Series, error) {
	query := fmt.Sprintf("%s WHERE s.%s = $1 AND s.%s IS NOT DISTINCT FROM $2::smallint ORDER BY s.%s LIMIT 1",
		selectSeries,
		schema.CoreSeries.NameKey,
		schema.CoreSeries.Year,
		schema.CoreSeries.ID,
	)
	return repository.findOne(context, query, NameKey(name), year)
}

// findOne scans a single hydrated row, mapping no rows to nil.
func (repository *postgresStore) findOne(context context.Context, query string, args ...any) (*Series, error) {
	series := &Series{}
	var genresJSON, titlesJSON []byte

	err := repository.pool.QueryRow(context, query, args...).Scan(
		&series.ID,
		&series.Name,
		&series.ChapterNumber,
		&series.Year,
		&series.Description,
		&series.DescriptionEN,
		&series.Qualification,
		&series.DemographyID,
		&series.Visible,
		&series.Image,
		&series.Rank,
		&series.CreatedAt,
		&series.UpdatedAt,
		&genresJSON,
		&titlesJSON,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("postgres: failed to find series: %w", err)
	}

	// Relationship hydration
	if err := json.Unmarshal(genresJSON, &series.Genres); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal genres: %w", err)
	}
	if err := json.Unmarshal(titlesJSON, &series.Titles); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal titles: %w", err)
	}

	return series, nil
}

/*
Create inserts the series row. The rank column keeps its default until the
next recompute.

Parameters:
  - context: context.Context
  - fields: Fields

Returns:
  - int64: The generated id
  - error: Insert failures
*/
func (repository *postgresStore) Create(context context.Context, fields Fields) (int64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s
	`,
		schema.CoreSeries.Table,
		schema.CoreSeries.Name, schema.CoreSeries.NameKey, schema.CoreSeries.ChapterNumber,
		schema.CoreSeries.Year, schema.CoreSeries.Description, schema.CoreSeries.DescriptionEN,
		schema.CoreSeries.Qualification, schema.CoreSeries.DemographyID, schema.CoreSeries.Visible,
		schema.CoreSeries.ID,
	)

	var id int64
	err := repository.pool.QueryRow(context, query,
		fields.Name,
		NameKey(fields.Name),
		fields.ChapterNumber,
		fields.Year,
		fields.Description,
		fields.DescriptionEN,
		fields.Qualification,
		fields.DemographyID,
		fields.Visible,
	).Scan(&id)

	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return 0, dberr.Wrap(err, "Series", "create series")
		}
		return 0, fmt.Errorf("postgres: failed to create series: %w", err)
	}

	return id, nil
}

/*
Update writes the non-nil members of the patch.

Description: Builds the SET clause dynamically. A new name also rewrites
the stored name key so natural-key lookups follow the rename.

Parameters:
  - context: context.Context
  - id: int64
  - patch: Patch

Returns:
  - error: apperr.NotFound when no row matched, or execution failures
*/
func (repository *postgresStore) Update(context context.Context, id int64, patch Patch) error {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("UPDATE %s SET %s = NOW()", schema.CoreSeries.Table, schema.CoreSeries.UpdatedAt))

	var args []any
	set := func(column string, value any) {
		args = append(args, value)
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		set(schema.CoreSeries.Name, *patch.Name)
		set(schema.CoreSeries.NameKey, NameKey(*patch.Name))
	}
	if patch.ChapterNumber != nil {
		set(schema.CoreSeries.ChapterNumber, *patch.ChapterNumber)
	}
	if patch.Year != nil {
		set(schema.CoreSeries.Year, *patch.Year)
	}
	if patch.Description != nil {
		set(schema.CoreSeries.Description, *patch.Description)
	}
	if patch.DescriptionEN != nil {
		set(schema.CoreSeries.DescriptionEN, *patch.DescriptionEN)
	}
	if patch.Qualification != nil {
		set(schema.CoreSeries.Qualification, *patch.Qualification)
	}
	if patch.DemographyID != nil {
		set(schema.CoreSeries.DemographyID, *patch.DemographyID)
	}
	if patch.Visible != nil {
		set(schema.CoreSeries.Visible, *patch.Visible)
	}

	args = append(args, id)
	queryBuilder.WriteString(fmt.Sprintf(" WHERE %s = $%d", schema.CoreSeries.ID, len(args)))

	response, err := repository.pool.Exec(context, queryBuilder.String(), args...)
	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return dberr.Wrap(err, "Series", "update series")
		}
		return fmt.Errorf("postgres: failed to update series: %w", err)
	}

	if response.RowsAffected() == 0 {
		return apperr.NotFound("Series")
	}

	return nil
}

// Delete removes the row. Genre links and titles cascade.
func (repository *postgresStore) Delete(context context.Context, id int64) (bool, error) {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.CoreSeries.Table, schema.CoreSeries.ID)

	response, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return false, fmt.Errorf("postgres: failed to delete series: %w", err)
	}

	return response.RowsAffected() > 0, nil
}

// UpdateImage stores the processed image path.
func (repository *postgresStore) UpdateImage(context context.Context, id int64, path string) (bool, error) {
	query := fmt.Sprintf("UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2",
		schema.CoreSeries.Table, schema.CoreSeries.Image, schema.CoreSeries.UpdatedAt, schema.CoreSeries.ID)

	response, err := repository.pool.Exec(context, query, path, id)
	if err != nil {
		return false, fmt.Errorf("postgres: failed to update series image: %w", err)
	}

	return response.RowsAffected() > 0, nil
}

/*
UpdateRank recomputes the rank of every series.

Description: Calls the stored function, which rewrites the rank column in
a single statement. The call returns once that statement has committed, so
a following read observes the new ranking.

Parameters:
  - context: context.Context

Returns:
  - error: Execution failures
*/
func (repository *postgresStore) UpdateRank(context context.Context) error {
	query := fmt.Sprintf("SELECT %s()", schema.RefreshRankFunction)
	if _, err := repository.pool.Exec(context, query); err != nil {
		return fmt.Errorf("postgres: failed to refresh series rank: %w", err)
	}
	return nil
}
