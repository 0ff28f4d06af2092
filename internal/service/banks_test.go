// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/loan-tracker/internal/logger"
	"github.com/MKhiriev/loan-tracker/internal/mock"
	"github.com/MKhiriev/loan-tracker/internal/store"
	"github.com/MKhiriev/loan-tracker/models"
)

func TestBankService_ApplyToBanks(t *testing.T) {
	svc, repo, _ := newTestStore(t)
	ctx := context.Background()

	record := addCompletedLead(t, svc, "Applicant")

	apps, err := svc.BankService.ApplyToBanks(ctx, record, []models.BankName{models.BankHDFC, models.BankICICI})
	require.NoError(t, err)
	require.Len(t, apps, 2)

	assert.Equal(t, []string{"BANK-HDFC-00001", "BANK-ICICI-00001"}, appIDs(apps))
	for _, app := range apps {
		assert.Equal(t, record.SerialNo, app.SerialNo)
		assert.Equal(t, record.FullName, app.CustomerName)
		assert.Equal(t, record.Phone, app.Phone)
		assert.Equal(t, record.LoanType, app.LoanType)
		assert.Equal(t, record.RequestedAmount, app.Amount)
		assert.Equal(t, fixedNow, app.AppliedAt)
		assert.True(t, app.IsPending())
	}

	history, _ := repo.BankHistory(ctx)
	statusPending, _ := repo.BankStatusPending(ctx)
	bankPending, _ := repo.BankPending(ctx)

	assert.Equal(t, appIDs(apps), appIDs(history))
	assert.Equal(t, appIDs(apps), appIDs(statusPending))
	assert.Empty(t, bankPending)

	counters, err := repo.LastBankAppNo(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[models.BankName]int64{models.BankHDFC: 1, models.BankICICI: 1}, counters)
}

func TestBankService_ApplyToBanks_CountersPerBank(t *testing.T) {
	svc, _, _ := newTestStore(t)
	ctx := context.Background()

	first := addCompletedLead(t, svc, "First")
	second := addCompletedLead(t, svc, "Second")

	apps, err := svc.BankService.ApplyToBanks(ctx, first, []models.BankName{models.BankHDFC, models.BankICICI})
	require.NoError(t, err)
	assert.Equal(t, []string{"BANK-HDFC-00001", "BANK-ICICI-00001"}, appIDs(apps))

	apps, err = svc.BankService.ApplyToBanks(ctx, second, []models.BankName{models.BankSBI, models.BankHDFC})
	require.NoError(t, err)
	assert.Equal(t, []string{"BANK-SBI-00001", "BANK-HDFC-00002"}, appIDs(apps))
}

func TestBankService_ApplyToBanks_EmptyListWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: any repository call fails the test
	repo := mock.NewMockTrackingRepository(ctrl)
	svc := NewBankService(repo, fixedClock, logger.Nop())

	apps, err := svc.ApplyToBanks(context.Background(), models.DocumentRecord{SerialNo: 1}, nil)
	require.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)
}

func TestBankService_ApplyToBanks_RemovesEverySerialNoMatch(t *testing.T) {
	svc, repo, _ := newTestStore(t)
	ctx := context.Background()

	record := models.DocumentRecord{SerialNo: 9, FullName: "Dup"}
	other := models.DocumentRecord{SerialNo: 10, FullName: "Other"}
	require.NoError(t, repo.SaveBankPending(ctx, []models.DocumentRecord{record, other, record}))

	_, err := svc.BankService.ApplyToBanks(ctx, record, []models.BankName{models.BankAxis})
	require.NoError(t, err)

	bankPending, err := repo.BankPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, serialNos(bankPending))
}

func TestBankService_ApplyToBanks_WritesInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockTrackingRepository(ctrl)
	svc := NewBankService(repo, fixedClock, logger.Nop())
	ctx := context.Background()
	record := models.DocumentRecord{SerialNo: 3}

	gomock.InOrder(
		repo.EXPECT().LastBankAppNo(ctx).Return(map[models.BankName]int64{models.BankHDFC: 4}, nil),
		repo.EXPECT().SaveLastBankAppNo(ctx, map[models.BankName]int64{models.BankHDFC: 5, models.BankSBI: 1}).Return(nil),
		repo.EXPECT().BankHistory(ctx).Return([]models.BankApplication{}, nil),
		repo.EXPECT().SaveBankHistory(ctx, gomock.Len(2)).Return(nil),
		repo.EXPECT().BankStatusPending(ctx).Return([]models.BankApplication{}, nil),
		repo.EXPECT().SaveBankStatusPending(ctx, gomock.Len(2)).Return(nil),
		repo.EXPECT().BankPending(ctx).Return([]models.DocumentRecord{record}, nil),
		repo.EXPECT().SaveBankPending(ctx, gomock.Len(0)).Return(nil),
	)

	apps, err := svc.ApplyToBanks(ctx, record, []models.BankName{models.BankHDFC, models.BankSBI})
	require.NoError(t, err)
	assert.Equal(t, []string{"BANK-HDFC-00005", "BANK-SBI-00001"}, appIDs(apps))
}

func TestBankService_ApplyToBanks_PartialFailure(t *testing.T) {
	svc, repo := newFailingStore(t, store.KeyBankStatusPending)
	ctx := context.Background()

	record := addCompletedLead(t, svc, "A")

	_, err := svc.BankService.ApplyToBanks(ctx, record, []models.BankName{models.BankHDFC})
	assert.ErrorIs(t, err, errInjected)

	// counters and history were written, the record is still waiting
	counters, _ := repo.LastBankAppNo(ctx)
	history, _ := repo.BankHistory(ctx)
	bankPending, _ := repo.BankPending(ctx)
	assert.Equal(t, int64(1), counters[models.BankHDFC])
	assert.Len(t, history, 1)
	assert.Len(t, bankPending, 1)

	// the suffix is burned even though the operation failed
	_, err = svc.BankService.ApplyToBanks(ctx, record, []models.BankName{models.BankHDFC})
	assert.ErrorIs(t, err, errInjected)
	counters, _ = repo.LastBankAppNo(ctx)
	assert.Equal(t, int64(2), counters[models.BankHDFC])
}

func TestBankService_Getters(t *testing.T) {
	svc, _, _ := newTestStore(t)
	ctx := context.Background()

	record := addCompletedLead(t, svc, "A")

	pending, err := svc.BankService.GetBankPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{record.SerialNo}, serialNos(pending))

	_, err = svc.BankService.GetBankPendingRecord(ctx, 404)
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	history, err := svc.BankService.GetBankHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}
