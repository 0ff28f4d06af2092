// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "tracker.json")

	kv, err := NewFileStorage(path, "loan-tracker", 0)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, KeyLastSerialNo, []byte("5")))
	require.NoError(t, kv.Close())

	reopened, err := NewFileStorage(path, "loan-tracker", 0)
	require.NoError(t, err)
	got, err := reopened.Get(ctx, KeyLastSerialNo)
	require.NoError(t, err)
	assert.Equal(t, "5", string(got))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var state filePersistedState
	require.NoError(t, json.Unmarshal(data, &state))
	assert.Equal(t, fileStateVersion, state.Version)
	assert.Equal(t, "5", state.Items["loan-tracker:lastSerialNo"])
}

func TestFileStorage_SharedBetweenProcesses(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tracker.json")

	first, err := NewFileStorage(path, "ns", 0)
	require.NoError(t, err)
	second, err := NewFileStorage(path, "ns", 0)
	require.NoError(t, err)

	require.NoError(t, first.Set(ctx, KeyLeads, []byte(`[]`)))
	got, err := second.Get(ctx, KeyLeads)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, second.Set(ctx, KeyLeads, []byte(`[{"serialNo":1}]`)))
	got, err = first.Get(ctx, KeyLeads)
	require.NoError(t, err)
	assert.Equal(t, `[{"serialNo":1}]`, string(got))
}

func TestFileStorage_SeesSameSizeWriteWithUnchangedModTime(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tracker.json")

	writer, err := NewFileStorage(path, "ns", 0)
	require.NoError(t, err)
	require.NoError(t, writer.Set(ctx, KeyLastSerialNo, []byte("1")))

	reader, err := NewFileStorage(path, "ns", 0)
	require.NoError(t, err)
	got, err := reader.Get(ctx, KeyLastSerialNo)
	require.NoError(t, err)
	require.Equal(t, "1", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// same size, same mtime, different content
	updated := bytes.Replace(data, []byte(`"ns:lastSerialNo": "1"`), []byte(`"ns:lastSerialNo": "2"`), 1)
	require.NotEqual(t, data, updated)
	require.NoError(t, os.WriteFile(path, updated, 0o600))
	require.NoError(t, os.Chtimes(path, info.ModTime(), info.ModTime()))

	got, err = reader.Get(ctx, KeyLastSerialNo)
	require.NoError(t, err)
	assert.Equal(t, "2", string(got))
}

func TestFileStorage_RemoveAndMissing(t *testing.T) {
	ctx := context.Background()
	kv, err := NewFileStorage(filepath.Join(t.TempDir(), "tracker.json"), "ns", 0)
	require.NoError(t, err)

	_, err = kv.Get(ctx, KeyActiveUser)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, kv.Remove(ctx, KeyActiveUser))

	require.NoError(t, kv.Set(ctx, KeyActiveUser, []byte(`{}`)))
	require.NoError(t, kv.Remove(ctx, KeyActiveUser))
	_, err = kv.Get(ctx, KeyActiveUser)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileStorage_QuotaCountsOnlyOwnNamespace(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tracker.json")

	other, err := NewFileStorage(path, "other", 0)
	require.NoError(t, err)
	require.NoError(t, other.Set(ctx, "big", make([]byte, 100)))

	// "a:k" is 3 bytes
	kv, err := NewFileStorage(path, "a", 10)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "k", []byte("1234567")))
	assert.ErrorIs(t, kv.Set(ctx, "k", []byte("12345678")), ErrQuotaExceeded)

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "1234567", string(got))
}

func TestFileStorage_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStorage(path, "ns", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode storage file")
}

func TestFileStorage_EmptyPath(t *testing.T) {
	_, err := NewFileStorage("", "ns", 0)
	assert.Error(t, err)
}
