// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/loan-tracker/internal/logger"
	"github.com/MKhiriev/loan-tracker/internal/mock"
	"github.com/MKhiriev/loan-tracker/internal/store"
	"github.com/MKhiriev/loan-tracker/models"
)

func TestLeadService_AddLead_FirstLead(t *testing.T) {
	svc, repo, _ := newTestStore(t)
	ctx := context.Background()

	lead, err := svc.LeadService.AddLead(ctx, leadInput("A"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), lead.SerialNo)
	assert.Equal(t, fixedNow, lead.CreatedAt)
	assert.Equal(t, models.HomeLoan, lead.LoanType)

	pending, err := repo.DocumentPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(1), pending[0].SerialNo)
	assert.Nil(t, pending[0].Documents)
	assert.Nil(t, pending[0].CompletedAt)

	lastSerialNo, err := repo.LastSerialNo(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), lastSerialNo)
}

func TestLeadService_AddLead_SerialNumbersStrictlyIncrease(t *testing.T) {
	svc, _, _ := newTestStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 10; want++ {
		lead, err := svc.LeadService.AddLead(ctx, leadInput("lead"))
		require.NoError(t, err)
		assert.Equal(t, want, lead.SerialNo)
	}

	leads, err := svc.LeadService.GetLeads(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 10)
	for i, l := range leads {
		assert.Equal(t, int64(i+1), l.SerialNo)
	}
}

func TestLeadService_AddLead_ContinuesFromCounter(t *testing.T) {
	svc, repo, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveLastSerialNo(ctx, 41))

	lead, err := svc.LeadService.AddLead(ctx, leadInput("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), lead.SerialNo)
}

func TestLeadService_AddLead_RecordOnlyInDocumentPending(t *testing.T) {
	svc, repo, _ := newTestStore(t)
	ctx := context.Background()

	notes := "call after 5pm"
	input := leadInput("B")
	input.Notes = &notes

	lead, err := svc.LeadService.AddLead(ctx, input)
	require.NoError(t, err)

	pending, _ := repo.DocumentPending(ctx)
	history, _ := repo.DocumentHistory(ctx)
	bankPending, _ := repo.BankPending(ctx)

	assert.Equal(t, []int64{lead.SerialNo}, serialNos(pending))
	assert.Empty(t, history)
	assert.Empty(t, bankPending)

	require.NotNil(t, pending[0].Notes)
	assert.Equal(t, notes, *pending[0].Notes)
	assert.Equal(t, input.RequestedAmount, pending[0].RequestedAmount)
}

func TestLeadService_AddLead_WritesInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockTrackingRepository(ctrl)
	svc := NewLeadService(repo, fixedClock, logger.Nop())
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Leads(ctx).Return([]models.Lead{}, nil),
		repo.EXPECT().LastSerialNo(ctx).Return(int64(7), nil),
		repo.EXPECT().SaveLeads(ctx, gomock.Len(1)).Return(nil),
		repo.EXPECT().SaveLastSerialNo(ctx, int64(8)).Return(nil),
		repo.EXPECT().DocumentPending(ctx).Return([]models.DocumentRecord{}, nil),
		repo.EXPECT().SaveDocumentPending(ctx, gomock.Len(1)).Return(nil),
	)

	lead, err := svc.AddLead(ctx, leadInput("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(8), lead.SerialNo)
}

func TestLeadService_AddLead_PartialFailureIsExposed(t *testing.T) {
	svc, repo := newFailingStore(t, store.KeyDocumentPending)
	ctx := context.Background()

	_, err := svc.LeadService.AddLead(ctx, leadInput("A"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errInjected)

	// earlier writes stay applied
	leads, err := repo.Leads(ctx)
	require.NoError(t, err)
	assert.Len(t, leads, 1)

	lastSerialNo, err := repo.LastSerialNo(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), lastSerialNo)

	pending, err := repo.DocumentPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestLeadService_AddLead_QuotaExceededPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockTrackingRepository(ctrl)
	svc := NewLeadService(repo, fixedClock, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().Leads(ctx).Return([]models.Lead{}, nil)
	repo.EXPECT().LastSerialNo(ctx).Return(int64(0), nil)
	repo.EXPECT().SaveLeads(ctx, gomock.Any()).Return(store.ErrQuotaExceeded)

	_, err := svc.AddLead(ctx, leadInput("A"))
	assert.ErrorIs(t, err, store.ErrQuotaExceeded)
}

func TestLeadService_AddLead_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockTrackingRepository(ctrl)
	svc := NewLeadService(repo, fixedClock, logger.Nop())
	ctx := context.Background()

	repo.EXPECT().Leads(ctx).Return(nil, store.ErrCorruptedValue)

	_, err := svc.AddLead(ctx, leadInput("A"))
	assert.ErrorIs(t, err, store.ErrCorruptedValue)
}

func TestLeadService_UpdateLead(t *testing.T) {
	svc, repo, _ := newTestStore(t)
	ctx := context.Background()

	lead, err := svc.LeadService.AddLead(ctx, leadInput("Old Name"))
	require.NoError(t, err)

	name := "New Name"
	amount := 250000.0
	updated, err := svc.LeadService.UpdateLead(ctx, lead.SerialNo, models.LeadPatch{FullName: &name, RequestedAmount: &amount})
	require.NoError(t, err)

	assert.Equal(t, lead.SerialNo, updated.SerialNo)
	assert.Equal(t, name, updated.FullName)
	assert.Equal(t, amount, updated.RequestedAmount)
	assert.Equal(t, lead.Phone, updated.Phone)

	stored, err := svc.LeadService.GetLead(ctx, lead.SerialNo)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)

	// the pending document copy keeps the old fields
	pending, err := repo.DocumentPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Old Name", pending[0].FullName)
}

func TestLeadService_UpdateLead_NotFound(t *testing.T) {
	svc, _, _ := newTestStore(t)
	ctx := context.Background()

	name := "x"
	_, err := svc.LeadService.UpdateLead(ctx, 99, models.LeadPatch{FullName: &name})
	assert.ErrorIs(t, err, ErrLeadNotFound)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = svc.LeadService.GetLead(ctx, 99)
	assert.ErrorIs(t, err, ErrLeadNotFound)
}
