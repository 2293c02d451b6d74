// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr translates pgx driver errors into [apperr.AppError] values.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/serieshub/internal/platform/apperr"
)

// SQLSTATE codes inspected by this package.
const (
	codeForeignKeyViolation = "23503"
)

// Wrap classifies a database error.
//
// pgx.ErrNoRows becomes a NotFound for the named resource. A foreign key
// violation becomes a validation failure because the caller referenced a row
// that does not exist. Anything else is a storage failure for the action.
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	if IsForeignKeyViolation(err) {
		return apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   constraintField(err),
			Message: "References a row that does not exist",
		})
	}

	return apperr.Storage(action, err)
}

// IsForeignKeyViolation reports whether err carries SQLSTATE 23503.
func IsForeignKeyViolation(err error) bool {
	var pgError *pgconn.PgError
	return errors.As(err, &pgError) && pgError.Code == codeForeignKeyViolation
}

// constraintField maps the violated column back to its JSON field name.
func constraintField(err error) string {
	var pgError *pgconn.PgError
	if !errors.As(err, &pgError) {
		return ""
	}

	switch pgError.ColumnName {
	case "demographyid":
		return "demography_id"
	case "genreid":
		return "genre_ids"
	}

	// Constraint names follow the postgres default <table>_<column>_fkey.
	switch pgError.ConstraintName {
	case "series_demographyid_fkey":
		return "demography_id"
	case "seriesgenre_genreid_fkey":
		return "genre_ids"
	}
	return pgError.ConstraintName
}
