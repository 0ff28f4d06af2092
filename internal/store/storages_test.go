// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/loan-tracker/internal/config"
	"github.com/MKhiriev/loan-tracker/internal/logger"
)

func TestNewStorages(t *testing.T) {
	mr := miniredis.RunT(t)
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  config.Storage
	}{
		{
			name: "memory",
			cfg:  config.Storage{Driver: config.DriverMemory, Namespace: "ns"},
		},
		{
			name: "file",
			cfg: config.Storage{
				Driver:    config.DriverFile,
				Namespace: "ns",
				File:      config.File{Path: filepath.Join(dir, "tracker.json")},
			},
		},
		{
			name: "sqlite",
			cfg: config.Storage{
				Driver:     config.DriverSQLite,
				Namespace:  "ns",
				QuotaBytes: 1024,
				DB:         config.DB{DSN: filepath.Join(dir, "tracker.db")},
			},
		},
		{
			name: "redis",
			cfg: config.Storage{
				Driver:    config.DriverRedis,
				Namespace: "ns",
				Redis:     config.Redis{Address: mr.Addr()},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			storages, err := NewStorages(ctx, tt.cfg, logger.Nop())
			require.NoError(t, err)
			defer storages.Close()

			require.NoError(t, storages.Tracking.SaveLastSerialNo(ctx, 42))
			got, err := storages.Tracking.LastSerialNo(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(42), got)

			raw, err := storages.KeyValue.Get(ctx, KeyLastSerialNo)
			require.NoError(t, err)
			assert.Equal(t, "42", string(raw))
		})
	}
}

func TestNewStorage_UnsupportedDriver(t *testing.T) {
	_, err := NewStorage(context.Background(), config.Storage{Driver: "etcd"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
