// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package genre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/serieshub/internal/platform/database/schema"
	"github.com/taibuivan/serieshub/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListGenres(context context.Context) ([]Genre, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefGenre.ID, schema.RefGenre.Name, schema.RefGenre.Table, schema.RefGenre.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Genre", "list genres")
	}
	defer rows.Close()

	genres := make([]Genre, 0)
	for rows.Next() {
		var g Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, dberr.Wrap(err, "Genre", "scan genre")
		}
		genres = append(genres, g)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Genre", "list genres")
	}
	return genres, nil
}

func (repository *PostgresRepository) GetGenreByID(context context.Context, id int64) (*Genre, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.RefGenre.ID, schema.RefGenre.Name, schema.RefGenre.Table, schema.RefGenre.ID)

	g := &Genre{}
	if err := repository.db.QueryRow(context, query, id).Scan(&g.ID, &g.Name); err != nil {
		return nil, dberr.Wrap(err, "Genre", "get genre")
	}
	return g, nil
}

func (repository *PostgresRepository) ListDemographies(context context.Context) ([]Demography, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefDemography.ID, schema.RefDemography.Name, schema.RefDemography.Table, schema.RefDemography.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Demography", "list demographies")
	}
	defer rows.Close()

	demographies := make([]Demography, 0)
	for rows.Next() {
		var d Demography
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, dberr.Wrap(err, "Demography", "scan demography")
		}
		demographies = append(demographies, d)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Demography", "list demographies")
	}
	return demographies, nil
}
