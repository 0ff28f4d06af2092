// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/loan-tracker/internal/config"
	"github.com/MKhiriev/loan-tracker/internal/logger"
)

// sizesField is the hash holding the byte size of every key of the namespace.
const sizesField = "__sizes"

const redisMaxTxAttempts = 5

// redisStorage stores each key as a plain string. Quota accounting uses a
// per-namespace hash updated under WATCH.
type redisStorage struct {
	client    *redis.Client
	namespace string
	quota     int64
	logger    *logger.Logger
}

// NewRedisStorage connects to the server described by cfg and pings it.
func NewRedisStorage(ctx context.Context, cfg config.Redis, namespace string, quota int64, log *logger.Logger) (KeyValueStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisStorage").Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisStorage").Str("address", cfg.Address).Msg("connected to redis successfully")

	return newRedisStorage(client, namespace, quota, log), nil
}

func newRedisStorage(client *redis.Client, namespace string, quota int64, log *logger.Logger) *redisStorage {
	return &redisStorage{
		client:    client,
		namespace: namespace,
		quota:     quota,
		logger:    log,
	}
}

func (r *redisStorage) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, namespacedKey(r.namespace, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "redisStorage.Get").Str("key", key).Msg("error reading value")
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, nil
}

func (r *redisStorage) Set(ctx context.Context, key string, value []byte) error {
	k := namespacedKey(r.namespace, key)
	sizesKey := namespacedKey(r.namespace, sizesField)

	txf := func(tx *redis.Tx) error {
		if r.quota > 0 {
			sizes, err := tx.HGetAll(ctx, sizesKey).Result()
			if err != nil {
				return err
			}
			if usedWithout(sizes, k)+entrySize(k, value) > r.quota {
				return ErrQuotaExceeded
			}
		}

		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, value, 0)
			pipe.HSet(ctx, sizesKey, k, entrySize(k, value))
			return nil
		})
		return err
	}

	err := r.watch(ctx, txf, k, sizesKey)
	if errors.Is(err, ErrQuotaExceeded) {
		return ErrQuotaExceeded
	}
	if err != nil {
		r.logger.Err(err).Str("func", "redisStorage.Set").Str("key", key).Msg("error writing value")
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (r *redisStorage) Remove(ctx context.Context, key string) error {
	k := namespacedKey(r.namespace, key)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, k)
		pipe.HDel(ctx, namespacedKey(r.namespace, sizesField), k)
		return nil
	})
	if err != nil {
		r.logger.Err(err).Str("func", "redisStorage.Remove").Str("key", key).Msg("error removing value")
		return fmt.Errorf("redis remove %q: %w", key, err)
	}
	return nil
}

func (r *redisStorage) Close() error {
	return r.client.Close()
}

// watch runs txf under optimistic locking, retrying when a watched key
// changed concurrently.
func (r *redisStorage) watch(ctx context.Context, txf func(tx *redis.Tx) error, keys ...string) error {
	var err error
	for range redisMaxTxAttempts {
		err = r.client.Watch(ctx, txf, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return err
}

func usedWithout(sizes map[string]string, skipKey string) int64 {
	var used int64
	for k, v := range sizes {
		if k == skipKey {
			continue
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			continue
		}
		used += n
	}
	return used
}
