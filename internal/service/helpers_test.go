// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/loan-tracker/internal/logger"
	"github.com/MKhiriev/loan-tracker/internal/store"
	"github.com/MKhiriev/loan-tracker/models"
)

var fixedNow = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// errInjected is returned by failOnKey for its key.
var errInjected = errors.New("injected write failure")

// failOnKey fails every Set of one key and passes everything else through.
type failOnKey struct {
	store.KeyValueStorage
	key string
}

func (f *failOnKey) Set(ctx context.Context, key string, value []byte) error {
	if key == f.key {
		return errInjected
	}
	return f.KeyValueStorage.Set(ctx, key, value)
}

func newTestStore(t *testing.T) (*Services, store.TrackingRepository, store.KeyValueStorage) {
	t.Helper()
	kv := store.NewMemoryStorage("test", 0)
	repo := store.NewTrackingRepository(kv, logger.Nop())
	return NewServices(repo, fixedClock, logger.Nop()), repo, kv
}

// newFailingStore wires services to a storage failing writes of key.
func newFailingStore(t *testing.T, key string) (*Services, store.TrackingRepository) {
	t.Helper()
	kv := &failOnKey{KeyValueStorage: store.NewMemoryStorage("test", 0), key: key}
	repo := store.NewTrackingRepository(kv, logger.Nop())
	return NewServices(repo, fixedClock, logger.Nop()), repo
}

func leadInput(name string) models.LeadInput {
	return models.LeadInput{
		FullName:        name,
		Phone:           "1234567890",
		Email:           "a@x.com",
		PanCard:         "ABCDE1234F",
		LoanType:        models.HomeLoan,
		RequestedAmount: 100000,
		MonthlyIncome:   50000,
	}
}

func fullChecklist() models.Documents {
	docs := models.Documents{}
	for _, slot := range models.DocumentSlots {
		name := string(slot) + ".pdf"
		docs[slot] = models.DocumentStatus{Uploaded: true, FileName: &name}
	}
	return docs
}

// addCompletedLead registers a lead and completes its documents, leaving it
// in bankPending.
func addCompletedLead(t *testing.T, svc *Services, name string) models.DocumentRecord {
	t.Helper()
	ctx := context.Background()

	lead, err := svc.LeadService.AddLead(ctx, leadInput(name))
	require.NoError(t, err)
	record, err := svc.DocumentService.SaveDocuments(ctx, lead.SerialNo, fullChecklist())
	require.NoError(t, err)
	return record
}

func serialNos(records []models.DocumentRecord) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		out = append(out, r.SerialNo)
	}
	return out
}

func appIDs(apps []models.BankApplication) []string {
	out := make([]string, 0, len(apps))
	for _, a := range apps {
		out = append(out, a.AppID)
	}
	return out
}
