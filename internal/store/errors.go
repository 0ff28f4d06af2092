// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storage backends and the tracking repository.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [KeyValueStorage.Get] when nothing is
	// stored under the requested key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrQuotaExceeded is returned when a write would push the namespace over
	// its configured size limit. Nothing is written in that case.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrCorruptedValue is returned when a stored value cannot be decoded into
	// the type expected for its key.
	ErrCorruptedValue = errors.New("stored value is corrupted")

	// ErrUnsupportedDriver is returned by [NewStorage] for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")

	// ErrStorageClosed is returned by in-process backends after Close.
	ErrStorageClosed = errors.New("storage is closed")
)

// Low-level database operation errors, wrapped by the SQL backend.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
