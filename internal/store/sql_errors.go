// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells the SQL backend whether a failed statement should be retried,
// reported as a quota violation, or returned as is.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a busy database).
	Retryable

	// QuotaExceeded indicates that the database ran out of space.
	QuotaExceeded
)

// ErrorClassificator classifies driver errors of a specific database.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
