// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/loan-tracker/internal/logger"
	"github.com/MKhiriev/loan-tracker/internal/store"
	"github.com/MKhiriev/loan-tracker/models"
)

type bankService struct {
	*core
}

func NewBankService(repo store.TrackingRepository, clock Clock, log *logger.Logger) BankService {
	return &bankService{core: newCore(repo, clock, log)}
}

// ApplyToBanks creates one application per bank, in the given order, with
// per-bank sequential ids. Persisted in four independent writes: counters,
// bankHistory, bankStatusPending and finally bankPending without the record.
// An empty bank list writes nothing.
func (s *bankService) ApplyToBanks(ctx context.Context, record models.DocumentRecord, banks []models.BankName) ([]models.BankApplication, error) {
	if len(banks) == 0 {
		return []models.BankApplication{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	counters, err := s.repo.LastBankAppNo(ctx)
	if err != nil {
		return nil, fmt.Errorf("apply to banks: %w", err)
	}

	appliedAt := s.now()
	apps := make([]models.BankApplication, 0, len(banks))
	for _, bank := range banks {
		counters[bank]++
		apps = append(apps, models.BankApplication{
			AppID:        models.BankAppID(bank, counters[bank]),
			SerialNo:     record.SerialNo,
			CustomerName: record.FullName,
			Phone:        record.Phone,
			BankName:     bank,
			LoanType:     record.LoanType,
			Amount:       record.RequestedAmount,
			AppliedAt:    appliedAt,
		})
	}

	if err = s.repo.SaveLastBankAppNo(ctx, counters); err != nil {
		return nil, fmt.Errorf("apply to banks: %w", err)
	}

	history, err := s.repo.BankHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("apply to banks: %w", err)
	}
	if err = s.repo.SaveBankHistory(ctx, append(history, apps...)); err != nil {
		return nil, fmt.Errorf("apply to banks: %w", err)
	}

	statusPending, err := s.repo.BankStatusPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("apply to banks: %w", err)
	}
	if err = s.repo.SaveBankStatusPending(ctx, append(statusPending, apps...)); err != nil {
		return nil, fmt.Errorf("apply to banks: %w", err)
	}

	bankPending, err := s.repo.BankPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("apply to banks: %w", err)
	}
	bankPending = slices.DeleteFunc(bankPending, bySerialNo(record.SerialNo))
	if err = s.repo.SaveBankPending(ctx, bankPending); err != nil {
		return nil, fmt.Errorf("apply to banks: %w", err)
	}

	s.log(ctx).Info().Str("func", "bankService.ApplyToBanks").
		Int64("serial_no", record.SerialNo).Int("applications", len(apps)).Msg("applied to banks")
	return apps, nil
}

func (s *bankService) GetBankPending(ctx context.Context) ([]models.DocumentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.repo.BankPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("get bank pending: %w", err)
	}
	return pending, nil
}

func (s *bankService) GetBankHistory(ctx context.Context) ([]models.BankApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.repo.BankHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("get bank history: %w", err)
	}
	return history, nil
}

func (s *bankService) GetBankPendingRecord(ctx context.Context, serialNo int64) (models.DocumentRecord, error) {
	pending, err := s.GetBankPending(ctx)
	if err != nil {
		return models.DocumentRecord{}, err
	}
	return findRecord(pending, serialNo)
}
