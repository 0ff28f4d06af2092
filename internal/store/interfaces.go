// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/loan-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStorage is the durable key-value area holding all tracker state.
//
// Values are opaque bytes (JSON documents in practice). Implementations are
// synchronous and offer no transactions: every call is an independent write.
type KeyValueStorage interface {
	// Get returns the value stored under key, or [ErrKeyNotFound].
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value. It returns
	// [ErrQuotaExceeded] when the write would exceed the storage quota.
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	// Close releases the underlying resources.
	Close() error
}

// TrackingRepository gives typed access to every collection of the tracker
// storage layout. Each Save call rewrites the whole collection.
//
// Reads of absent keys return empty values, except Users which returns
// [ErrKeyNotFound] so callers can fall back to the built-in accounts.
type TrackingRepository interface {
	Users(ctx context.Context) ([]models.User, error)
	SaveUsers(ctx context.Context, users []models.User) error

	Leads(ctx context.Context) ([]models.Lead, error)
	SaveLeads(ctx context.Context, leads []models.Lead) error

	DocumentPending(ctx context.Context) ([]models.DocumentRecord, error)
	SaveDocumentPending(ctx context.Context, records []models.DocumentRecord) error
	DocumentHistory(ctx context.Context) ([]models.DocumentRecord, error)
	SaveDocumentHistory(ctx context.Context, records []models.DocumentRecord) error

	BankPending(ctx context.Context) ([]models.DocumentRecord, error)
	SaveBankPending(ctx context.Context, records []models.DocumentRecord) error
	BankHistory(ctx context.Context) ([]models.BankApplication, error)
	SaveBankHistory(ctx context.Context, apps []models.BankApplication) error

	BankStatusPending(ctx context.Context) ([]models.BankApplication, error)
	SaveBankStatusPending(ctx context.Context, apps []models.BankApplication) error
	BankStatusHistory(ctx context.Context) ([]models.BankApplication, error)
	SaveBankStatusHistory(ctx context.Context, apps []models.BankApplication) error

	ActiveSession(ctx context.Context) (*models.ActiveSession, error)
	SaveActiveSession(ctx context.Context, session models.ActiveSession) error
	RemoveActiveSession(ctx context.Context) error

	LastSerialNo(ctx context.Context) (int64, error)
	SaveLastSerialNo(ctx context.Context, serialNo int64) error
	LastBankAppNo(ctx context.Context) (map[models.BankName]int64, error)
	SaveLastBankAppNo(ctx context.Context, counters map[models.BankName]int64) error

	IsInitialized(ctx context.Context) (bool, error)
	MarkInitialized(ctx context.Context) error
}
