// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_store"
	kvKeyColumn   = "item_key"
	kvValueColumn = "item_value"

	sqlMaxAttempts = 3
	sqlRetryDelay  = 50 * time.Millisecond
)

// sqlKeyValueStorage maps the key-value contract onto the kv_store table.
type sqlKeyValueStorage struct {
	db        *DB
	namespace string
	quota     int64
	builder   sq.StatementBuilderType
}

// NewSQLKeyValueStorage returns a [KeyValueStorage] backed by db. The schema
// must already be migrated.
func NewSQLKeyValueStorage(db *DB, namespace string, quota int64) KeyValueStorage {
	return &sqlKeyValueStorage{
		db:        db,
		namespace: namespace,
		quota:     quota,
		builder:   sq.StatementBuilder.PlaceholderFormat(db.placeholder),
	}
}

func (s *sqlKeyValueStorage) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := s.builder.
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: namespacedKey(s.namespace, key)}).
		ToSql()
	if err != nil {
		s.db.logger.Err(err).Str("func", "sqlKeyValueStorage.Get").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		s.db.logger.Err(err).Str("func", "sqlKeyValueStorage.Get").Str("key", key).Msg("error reading value")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return []byte(value), nil
}

func (s *sqlKeyValueStorage) Set(ctx context.Context, key string, value []byte) error {
	k := namespacedKey(s.namespace, key)

	if s.quota > 0 {
		used, err := s.usedWithout(ctx, k)
		if err != nil {
			return err
		}
		if used+entrySize(k, value) > s.quota {
			return ErrQuotaExceeded
		}
	}

	query, args, err := s.builder.
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, "updated_at").
		Values(k, string(value), sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (" + kvKeyColumn + ") DO UPDATE SET " +
			kvValueColumn + " = excluded." + kvValueColumn + ", updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		s.db.logger.Err(err).Str("func", "sqlKeyValueStorage.Set").Msg("error building upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = s.exec(ctx, query, args...); err != nil {
		s.db.logger.Err(err).Str("func", "sqlKeyValueStorage.Set").Str("key", key).Msg("error writing value")
		return err
	}
	return nil
}

func (s *sqlKeyValueStorage) Remove(ctx context.Context, key string) error {
	query, args, err := s.builder.
		Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: namespacedKey(s.namespace, key)}).
		ToSql()
	if err != nil {
		s.db.logger.Err(err).Str("func", "sqlKeyValueStorage.Remove").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = s.exec(ctx, query, args...); err != nil {
		s.db.logger.Err(err).Str("func", "sqlKeyValueStorage.Remove").Str("key", key).Msg("error removing value")
		return err
	}
	return nil
}

func (s *sqlKeyValueStorage) Close() error {
	return s.db.Close()
}

// usedWithout returns the bytes held by the namespace, not counting skipKey.
// The prefix is compared with SUBSTR so that LIKE wildcards in the namespace
// match literally.
func (s *sqlKeyValueStorage) usedWithout(ctx context.Context, skipKey string) (int64, error) {
	prefix := namespacedKey(s.namespace, "")
	query, args, err := s.builder.
		Select("COALESCE(SUM(" + s.db.byteLength(kvKeyColumn) + " + " + s.db.byteLength(kvValueColumn) + "), 0)").
		From(kvTable).
		Where(sq.Expr("SUBSTR("+kvKeyColumn+", 1, ?) = ?", utf8.RuneCountInString(prefix), prefix)).
		Where(sq.NotEq{kvKeyColumn: skipKey}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var used int64
	err = s.withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&used)
	})
	if err != nil {
		s.db.logger.Err(err).Str("func", "sqlKeyValueStorage.usedWithout").Msg("error computing namespace size")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return used, nil
}

func (s *sqlKeyValueStorage) exec(ctx context.Context, query string, args ...any) error {
	err := s.withRetry(ctx, func() error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
	if err == nil {
		return nil
	}
	if s.db.errorClassificator != nil && s.db.errorClassificator.Classify(err) == QuotaExceeded {
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// withRetry runs fn again while the error is classified as [Retryable].
func (s *sqlKeyValueStorage) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= sqlMaxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if s.db.errorClassificator == nil || s.db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		if attempt == sqlMaxAttempts {
			break
		}

		s.db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying database operation")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sqlRetryDelay * time.Duration(attempt)):
		}
	}
	return err
}
