// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Storage drivers understood by the store package.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// StructuredConfig is the top-level configuration container of the tracker.
// It is populated by merging values from environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the key-value backend holding all
	// tracker state.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log configures the log sink.
	Log Log `envPrefix:"LOG_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string reported in the TUI.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// SkipSeed disables first-run population with demo data.
	// Env: APP_SKIP_SEED
	SkipSeed bool `env:"SKIP_SEED"`
}

// Storage groups the configuration of every supported backend. Only the
// section matching Driver is used.
type Storage struct {
	// Driver is one of memory, file, sqlite, postgres, redis.
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// Namespace prefixes every key written by the tracker.
	// Env: STORAGE_NAMESPACE
	Namespace string `env:"NAMESPACE"`

	// QuotaBytes caps the total size of keys and values in the namespace.
	// Env: STORAGE_QUOTA_BYTES
	QuotaBytes int64 `env:"QUOTA_BYTES"`

	// DB holds SQL connection settings for the sqlite and postgres drivers.
	DB DB `envPrefix:"DB_"`

	// File holds settings for the file driver.
	File File `envPrefix:"FILE_"`

	// Redis holds settings for the redis driver.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for SQL backends.
type DB struct {
	// DSN is a sqlite file path or a PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// File holds settings for the JSON file backend.
type File struct {
	// Path is the JSON document holding the whole namespace.
	// Env: STORAGE_FILE_PATH
	Path string `env:"PATH"`
}

// Redis holds connection settings for the redis backend.
type Redis struct {
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Log configures logging.
type Log struct {
	// File is the log file path. Empty means a "logs" file next to the binary.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// DashboardRefreshInterval is how often the dashboard is recomputed.
	// Env: WORKERS_DASHBOARD_REFRESH_INTERVAL
	DashboardRefreshInterval time.Duration `env:"DASHBOARD_REFRESH_INTERVAL"`
}

// Defaults applied to every field left empty by all sources.
const (
	DefaultDriver                   = DriverFile
	DefaultNamespace                = "loan-tracker"
	DefaultFilePath                 = "loan-tracker.json"
	DefaultQuotaBytes               = 5 * 1024 * 1024
	DefaultLogLevel                 = "info"
	DefaultDashboardRefreshInterval = 5 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Driver:     DefaultDriver,
			Namespace:  DefaultNamespace,
			QuotaBytes: DefaultQuotaBytes,
			File:       File{Path: DefaultFilePath},
		},
		Log:     Log{Level: DefaultLogLevel},
		Workers: Workers{DashboardRefreshInterval: DefaultDashboardRefreshInterval},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (later sources override
// non-zero fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields still empty afterwards receive the package defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
