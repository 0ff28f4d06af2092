// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/loan-tracker/internal/config"
	"github.com/MKhiriev/loan-tracker/internal/logger"
)

func newTestRedisStorage(t *testing.T, quota int64) (*redisStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return newRedisStorage(client, "ns", quota, logger.Nop()), mr
}

func TestRedisStorage_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	kv, mr := newTestRedisStorage(t, 0)

	_, err := kv.Get(ctx, KeyLeads)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, KeyLeads, []byte(`[]`)))
	got, err := kv.Get(ctx, KeyLeads)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	raw, err := mr.Get("ns:leads")
	require.NoError(t, err)
	assert.Equal(t, `[]`, raw)
	assert.Equal(t, "10", mr.HGet("ns:__sizes", "ns:leads"))

	require.NoError(t, kv.Remove(ctx, KeyLeads))
	_, err = kv.Get(ctx, KeyLeads)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.False(t, mr.Exists("ns:leads"))
	assert.Empty(t, mr.HGet("ns:__sizes", "ns:leads"))
}

func TestRedisStorage_Quota(t *testing.T) {
	ctx := context.Background()
	// "ns:k" is 4 bytes
	kv, _ := newTestRedisStorage(t, 10)

	require.NoError(t, kv.Set(ctx, "k", []byte("123456")))
	assert.ErrorIs(t, kv.Set(ctx, "k", []byte("1234567")), ErrQuotaExceeded)

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "123456", string(got))

	require.NoError(t, kv.Set(ctx, "k", []byte("1")))
	require.NoError(t, kv.Set(ctx, "j", []byte("1")))
	assert.ErrorIs(t, kv.Set(ctx, "x", []byte("1")), ErrQuotaExceeded)
}

func TestRedisStorage_ServerDown(t *testing.T) {
	ctx := context.Background()
	kv, mr := newTestRedisStorage(t, 0)
	mr.Close()

	_, err := kv.Get(ctx, KeyLeads)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)

	assert.Error(t, kv.Set(ctx, KeyLeads, []byte(`[]`)))
}

func TestNewRedisStorage(t *testing.T) {
	mr := miniredis.RunT(t)

	kv, err := NewRedisStorage(context.Background(), config.Redis{Address: mr.Addr()}, "ns", 0, logger.Nop())
	require.NoError(t, err)
	defer kv.Close()

	require.NoError(t, kv.Set(context.Background(), KeyLastSerialNo, []byte("1")))
	assert.True(t, mr.Exists("ns:lastSerialNo"))
}

func TestNewRedisStorage_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisStorage(context.Background(), config.Redis{Address: addr}, "ns", 0, logger.Nop())
	assert.Error(t, err)
}
