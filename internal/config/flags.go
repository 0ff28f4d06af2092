// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-driver storage driver (memory, file, sqlite, postgres, redis)
//	-namespace storage key namespace
//	-quota storage quota in bytes
//	-d database DSN (sqlite path or postgres URI)
//	-f JSON storage file path
//	-redis-address redis address host:port
//	-redis-password redis password
//	-redis-db redis database index
//	-log-file log file path
//	-log-level log level
//	-dashboard-refresh dashboard refresh interval (e.g. "5s")
//	-skip-seed do not populate demo data on first run
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig
	var refresh time.Duration

	fs := flag.NewFlagSet("tracker", flag.ContinueOnError)
	fs.StringVar(&cfg.Storage.Driver, "driver", "", "Storage driver")
	fs.StringVar(&cfg.Storage.Namespace, "namespace", "", "Storage key namespace")
	fs.Int64Var(&cfg.Storage.QuotaBytes, "quota", 0, "Storage quota in bytes")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.File.Path, "f", "", "JSON storage file path")
	fs.StringVar(&cfg.Storage.Redis.Address, "redis-address", "", "Redis address host:port")
	fs.StringVar(&cfg.Storage.Redis.Password, "redis-password", "", "Redis password")
	fs.IntVar(&cfg.Storage.Redis.DB, "redis-db", 0, "Redis database index")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")
	fs.DurationVar(&refresh, "dashboard-refresh", 0, "Dashboard refresh interval (e.g., 5s)")
	fs.BoolVar(&cfg.App.SkipSeed, "skip-seed", false, "Do not populate demo data on first run")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Workers.DashboardRefreshInterval = refresh

	return &cfg, nil
}
