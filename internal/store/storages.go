// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/loan-tracker/internal/config"
	"github.com/MKhiriev/loan-tracker/internal/logger"
)

// Storages groups the raw key-value area and the typed repository built on
// top of it.
type Storages struct {
	KeyValue KeyValueStorage
	Tracking TrackingRepository
}

// NewStorages opens the backend selected by cfg.Driver and wraps it with a
// [TrackingRepository]. SQL backends are migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.Driver).Str("namespace", cfg.Namespace).Msg("creating storages...")

	kv, err := NewStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		KeyValue: kv,
		Tracking: NewTrackingRepository(kv, log),
	}, nil
}

// Close releases the underlying backend.
func (s *Storages) Close() error {
	return s.KeyValue.Close()
}

// NewStorage returns the [KeyValueStorage] selected by cfg.Driver.
func NewStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (KeyValueStorage, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return NewMemoryStorage(cfg.Namespace, cfg.QuotaBytes), nil

	case config.DriverFile:
		kv, err := NewFileStorage(cfg.File.Path, cfg.Namespace, cfg.QuotaBytes)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
		return kv, nil

	case config.DriverSQLite, config.DriverPostgres:
		connect := NewConnectSQLite
		if cfg.Driver == config.DriverPostgres {
			connect = NewConnectPostgres
		}

		db, err := connect(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLKeyValueStorage(db, cfg.Namespace, cfg.QuotaBytes), nil

	case config.DriverRedis:
		return NewRedisStorage(ctx, cfg.Redis, cfg.Namespace, cfg.QuotaBytes, log)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
}
