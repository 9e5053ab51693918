// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements the persistence layer over PostgreSQL.
// Each aggregate (customers, templates, pages, page elements) gets its
// own store type wrapping a shared *sql.DB pool. Lookup methods return
// (nil, nil) when no row matches; callers decide whether that is an error.
package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes used to translate constraint violations into
// domain errors at the service layer.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation. The durable unique index is the real enforcement for slug and
// element-key uniqueness; service-level prechecks only produce friendlier
// errors in the common case.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign-key
// violation, e.g. deleting a template that still has dependent pages.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
