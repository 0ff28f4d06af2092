// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/loan-tracker/internal/logger"
	"github.com/MKhiriev/loan-tracker/migrations"
)

// DB wraps a *sql.DB together with the dialect specifics the key-value
// table needs: goose dialect, placeholder format and error classification.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// byteLength returns the SQL expression for the size of column in bytes.
// LENGTH on TEXT counts characters in both dialects.
func (db *DB) byteLength(column string) string {
	if db.dialect == "postgres" {
		return "OCTET_LENGTH(" + column + ")"
	}
	return "LENGTH(CAST(" + column + " AS BLOB))"
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
