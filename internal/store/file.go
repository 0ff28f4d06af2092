// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileStorage keeps every namespace of a single JSON document on disk.
// The document is re-read on every operation and decoded again whenever its
// content digest changes, so several processes pointed at the same path
// observe each other's writes.
type fileStorage struct {
	path      string
	namespace string
	quota     int64

	mu     sync.Mutex
	items  map[string]string
	digest [sha256.Size]byte
}

type filePersistedState struct {
	Version int               `json:"version"`
	Items   map[string]string `json:"items"`
}

const fileStateVersion = 1

// NewFileStorage opens (or lazily creates) the JSON document at path.
func NewFileStorage(path, namespace string, quota int64) (KeyValueStorage, error) {
	if path == "" {
		return nil, fmt.Errorf("file storage path is empty")
	}

	s := &fileStorage{
		path:      path,
		namespace: namespace,
		quota:     quota,
		items:     make(map[string]string),
	}
	if err := s.refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refresh(); err != nil {
		return nil, err
	}

	value, ok := s.items[namespacedKey(s.namespace, key)]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return []byte(value), nil
}

func (s *fileStorage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refresh(); err != nil {
		return err
	}

	k := namespacedKey(s.namespace, key)
	if s.quota > 0 && s.usedWithout(k)+entrySize(k, value) > s.quota {
		return ErrQuotaExceeded
	}

	prev, existed := s.items[k]
	s.items[k] = string(value)
	if err := s.persist(); err != nil {
		if existed {
			s.items[k] = prev
		} else {
			delete(s.items, k)
		}
		return err
	}
	return nil
}

func (s *fileStorage) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refresh(); err != nil {
		return err
	}

	k := namespacedKey(s.namespace, key)
	prev, ok := s.items[k]
	if !ok {
		return nil
	}

	delete(s.items, k)
	if err := s.persist(); err != nil {
		s.items[k] = prev
		return err
	}
	return nil
}

func (s *fileStorage) Close() error {
	return nil
}

// usedWithout sums the namespace entries, skipping skipKey.
func (s *fileStorage) usedWithout(skipKey string) int64 {
	prefix := namespacedKey(s.namespace, "")
	var used int64
	for k, v := range s.items {
		if k == skipKey || len(k) < len(prefix) || k[:len(prefix)] != prefix {
			continue
		}
		used += entrySize(k, []byte(v))
	}
	return used
}

func (s *fileStorage) refresh() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.items = make(map[string]string)
			s.digest = [sha256.Size]byte{}
			return nil
		}
		return fmt.Errorf("read storage file: %w", err)
	}

	digest := sha256.Sum256(data)
	if digest == s.digest {
		return nil
	}

	var st filePersistedState
	if len(data) > 0 {
		if err = json.Unmarshal(data, &st); err != nil {
			return fmt.Errorf("decode storage file: %w", err)
		}
	}
	if st.Items == nil {
		st.Items = make(map[string]string)
	}

	s.items = st.Items
	s.digest = digest
	return nil
}

func (s *fileStorage) persist() error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Version: fileStateVersion, Items: s.items}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp storage file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write storage file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace storage file: %w", err)
	}

	s.digest = sha256.Sum256(payload)
	return nil
}
