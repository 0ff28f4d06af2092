// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

// memoryStorage keeps the namespace in a map. It is used for tests and for
// throw-away sessions (driver "memory").
type memoryStorage struct {
	namespace string
	quota     int64

	mu     sync.RWMutex
	items  map[string][]byte
	used   int64
	closed bool
}

// NewMemoryStorage returns an empty in-memory [KeyValueStorage]. A quota of
// zero or less disables the size limit.
func NewMemoryStorage(namespace string, quota int64) KeyValueStorage {
	return &memoryStorage{
		namespace: namespace,
		quota:     quota,
		items:     make(map[string][]byte),
	}
}

func (m *memoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStorageClosed
	}

	value, ok := m.items[namespacedKey(m.namespace, key)]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

func (m *memoryStorage) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageClosed
	}

	k := namespacedKey(m.namespace, key)
	used := m.used
	if prev, ok := m.items[k]; ok {
		used -= entrySize(k, prev)
	}
	used += entrySize(k, value)

	if m.quota > 0 && used > m.quota {
		return ErrQuotaExceeded
	}

	m.items[k] = append([]byte(nil), value...)
	m.used = used
	return nil
}

func (m *memoryStorage) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStorageClosed
	}

	k := namespacedKey(m.namespace, key)
	if prev, ok := m.items[k]; ok {
		m.used -= entrySize(k, prev)
		delete(m.items, k)
	}
	return nil
}

func (m *memoryStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}
