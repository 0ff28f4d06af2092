// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderAppliesDefaults verifies that building with no
// sources yields the default configuration.
func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	assert.Equal(t, DriverFile, cfg.Storage.Driver)
	assert.Equal(t, int64(DefaultQuotaBytes), cfg.Storage.QuotaBytes)
	assert.Equal(t, 5*time.Second, cfg.Workers.DashboardRefreshInterval)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that a later non-zero field wins
// and an empty later field keeps the earlier value.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{Driver: DriverSQLite, DB: DB{DSN: "first.db"}, Namespace: "a"}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "second.db"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "second.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "a", cfg.Storage.Namespace)
}

func TestBuild_ValidationError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{Driver: DriverPostgres}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"driver": "memory"},
		"log":     map[string]any{"level": "error"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/missing.json"})

	b.withJSON()
	require.Error(t, b.err)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnvAndFlags_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DRIVER":    "memory",
		"STORAGE_NAMESPACE": "from-env",
	})

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-namespace", "from-flags"}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "from-flags", cfg.Storage.Namespace)
}

func TestWithFlags_InvalidFlagRecordsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := defaultConfig()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults", mutate: func(cfg *StructuredConfig) {}},
		{name: "memory", mutate: func(cfg *StructuredConfig) { cfg.Storage.Driver = DriverMemory }},
		{name: "unknown driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.Driver = "mongo" }, wantErr: ErrInvalidStorageConfigs},
		{name: "file without path", mutate: func(cfg *StructuredConfig) { cfg.Storage.File.Path = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "sqlite without dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.Driver = DriverSQLite }, wantErr: ErrInvalidStorageConfigs},
		{name: "sqlite with dsn", mutate: func(cfg *StructuredConfig) {
			cfg.Storage.Driver = DriverSQLite
			cfg.Storage.DB.DSN = "tracker.db"
		}},
		{name: "redis without address", mutate: func(cfg *StructuredConfig) { cfg.Storage.Driver = DriverRedis }, wantErr: ErrInvalidStorageConfigs},
		{name: "negative quota", mutate: func(cfg *StructuredConfig) { cfg.Storage.QuotaBytes = -1 }, wantErr: ErrInvalidStorageConfigs},
		{name: "zero refresh", mutate: func(cfg *StructuredConfig) { cfg.Workers.DashboardRefreshInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "bad log level", mutate: func(cfg *StructuredConfig) { cfg.Log.Level = "chatty" }, wantErr: ErrInvalidLogConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
