// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Why here
//
// Duplicate registration is deliberately allowed to race: the service layer
// pre-checks for an existing username/email, but the authoritative rejection
// comes from the database uniqueness constraint. This package is where that
// constraint violation is recognized and turned into a client-safe conflict.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/doodledog/doodledog/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	if IsUniqueViolation(err, "") {
		return apperr.Conflict(resource + " already exists")
	}

	// Unknown query errors become Internal Server Errors.
	return apperr.Internal(err)
}

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (SQLSTATE 23505). When constraint is non-empty, the violated
// constraint name must also match, which lets callers distinguish a duplicate
// username from a duplicate email.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != pgerrcode.UniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
