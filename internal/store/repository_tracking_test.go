// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/loan-tracker/internal/logger"
	"github.com/MKhiriev/loan-tracker/models"
)

// failingStorage fails every call with err.
type failingStorage struct{ err error }

func (f failingStorage) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingStorage) Set(context.Context, string, []byte) error   { return f.err }
func (f failingStorage) Remove(context.Context, string) error        { return f.err }
func (f failingStorage) Close() error                                { return nil }

func newTestRepository() (TrackingRepository, KeyValueStorage) {
	kv := NewMemoryStorage("test", 0)
	return NewTrackingRepository(kv, logger.Nop()), kv
}

func TestTrackingRepository_AbsentKeysReadEmpty(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()

	leads, err := repo.Leads(ctx)
	require.NoError(t, err)
	assert.NotNil(t, leads)
	assert.Empty(t, leads)

	pending, err := repo.DocumentPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	history, err := repo.BankStatusHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)

	session, err := repo.ActiveSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	serialNo, err := repo.LastSerialNo(ctx)
	require.NoError(t, err)
	assert.Zero(t, serialNo)

	counters, err := repo.LastBankAppNo(ctx)
	require.NoError(t, err)
	assert.NotNil(t, counters)
	assert.Empty(t, counters)

	initialized, err := repo.IsInitialized(ctx)
	require.NoError(t, err)
	assert.False(t, initialized)

	_, err = repo.Users(ctx)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestTrackingRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, kv := newTestRepository()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	lead := models.Lead{
		SerialNo:        1,
		FullName:        "Rajesh Kumar",
		Phone:           "9876543210",
		Email:           "rajesh@example.com",
		PanCard:         "ABCDE1234F",
		LoanType:        models.HomeLoan,
		RequestedAmount: 2500000,
		MonthlyIncome:   85000,
		CreatedAt:       now,
	}
	require.NoError(t, repo.SaveLeads(ctx, []models.Lead{lead}))
	leads, err := repo.Leads(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Lead{lead}, leads)

	status := models.StatusApproved
	app := models.BankApplication{
		AppID:        "BANK-HDFC-00001",
		SerialNo:     1,
		CustomerName: lead.FullName,
		BankName:     models.BankHDFC,
		LoanType:     lead.LoanType,
		Amount:       lead.RequestedAmount,
		Status:       &status,
		AppliedAt:    now,
	}
	require.NoError(t, repo.SaveBankHistory(ctx, []models.BankApplication{app}))
	apps, err := repo.BankHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.BankApplication{app}, apps)

	counters := map[models.BankName]int64{models.BankHDFC: 3}
	require.NoError(t, repo.SaveLastBankAppNo(ctx, counters))
	gotCounters, err := repo.LastBankAppNo(ctx)
	require.NoError(t, err)
	assert.Equal(t, counters, gotCounters)

	raw, err := kv.Get(ctx, KeyLastBankAppNo)
	require.NoError(t, err)
	assert.JSONEq(t, `{"HDFC":3}`, string(raw))

	session := models.ActiveSession{UserID: "admin", Role: models.RoleAdmin, LoginTime: now}
	require.NoError(t, repo.SaveActiveSession(ctx, session))
	gotSession, err := repo.ActiveSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, gotSession)
	assert.Equal(t, session, *gotSession)

	require.NoError(t, repo.RemoveActiveSession(ctx))
	gotSession, err = repo.ActiveSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, gotSession)
}

func TestTrackingRepository_SaveNilListWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	repo, kv := newTestRepository()

	require.NoError(t, repo.SaveBankPending(ctx, nil))

	raw, err := kv.Get(ctx, KeyBankPending)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestTrackingRepository_InitializedFlagPresence(t *testing.T) {
	ctx := context.Background()
	repo, kv := newTestRepository()

	require.NoError(t, kv.Set(ctx, KeyInitialized, []byte(`"yes"`)))
	initialized, err := repo.IsInitialized(ctx)
	require.NoError(t, err)
	assert.True(t, initialized)

	require.NoError(t, kv.Remove(ctx, KeyInitialized))
	require.NoError(t, repo.MarkInitialized(ctx))
	raw, err := kv.Get(ctx, KeyInitialized)
	require.NoError(t, err)
	assert.Equal(t, "true", string(raw))
}

func TestTrackingRepository_CorruptedValue(t *testing.T) {
	ctx := context.Background()
	repo, kv := newTestRepository()

	require.NoError(t, kv.Set(ctx, KeyLeads, []byte(`{"not":"a list"}`)))
	_, err := repo.Leads(ctx)
	assert.ErrorIs(t, err, ErrCorruptedValue)

	require.NoError(t, kv.Set(ctx, KeyLastSerialNo, []byte(`"five"`)))
	_, err = repo.LastSerialNo(ctx)
	assert.ErrorIs(t, err, ErrCorruptedValue)

	require.NoError(t, kv.Set(ctx, KeyUsers, []byte(`garbage`)))
	_, err = repo.Users(ctx)
	assert.ErrorIs(t, err, ErrCorruptedValue)
}

func TestTrackingRepository_PropagatesStorageErrors(t *testing.T) {
	ctx := context.Background()
	storageErr := errors.New("disk on fire")
	repo := NewTrackingRepository(failingStorage{err: storageErr}, logger.Nop())

	_, err := repo.Leads(ctx)
	assert.ErrorIs(t, err, storageErr)

	_, err = repo.IsInitialized(ctx)
	assert.ErrorIs(t, err, storageErr)

	assert.ErrorIs(t, repo.SaveLeads(ctx, nil), storageErr)
	assert.ErrorIs(t, repo.RemoveActiveSession(ctx), storageErr)
}

func TestTrackingRepository_QuotaExceeded(t *testing.T) {
	ctx := context.Background()
	repo := NewTrackingRepository(NewMemoryStorage("q", 16), logger.Nop())

	err := repo.SaveLeads(ctx, []models.Lead{{SerialNo: 1, FullName: "Somebody with a long name"}})
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	leads, err := repo.Leads(ctx)
	require.NoError(t, err)
	assert.Empty(t, leads)
}
