// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup. It assumes defaults have already been applied.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Workers.DashboardRefreshInterval <= 0 {
		return fmt.Errorf("%w: dashboard refresh interval must be positive", ErrInvalidWorkerConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}

	return nil
}

func (s Storage) validate() error {
	if s.QuotaBytes <= 0 {
		return fmt.Errorf("%w: quota must be positive", ErrInvalidStorageConfigs)
	}

	switch s.Driver {
	case DriverMemory:
		return nil
	case DriverFile:
		if s.File.Path == "" {
			return fmt.Errorf("%w: file path is required", ErrInvalidStorageConfigs)
		}
	case DriverSQLite, DriverPostgres:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
		}
	case DriverRedis:
		if s.Redis.Address == "" {
			return fmt.Errorf("%w: redis address is required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, s.Driver)
	}

	return nil
}
