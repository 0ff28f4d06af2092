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

type statusService struct {
	*core
}

func NewStatusService(repo store.TrackingRepository, clock Clock, log *logger.Logger) StatusService {
	return &statusService{core: newCore(repo, clock, log)}
}

// UpdateBankStatus finalises a pending application: it leaves
// bankStatusPending, is prepended to bankStatusHistory and overwrites its
// bankHistory entry. A missing bankHistory entry is skipped without error.
func (s *statusService) UpdateBankStatus(ctx context.Context, appID string, status models.BankStatus, remarks string) (models.BankApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.repo.BankStatusPending(ctx)
	if err != nil {
		return models.BankApplication{}, fmt.Errorf("update bank status: %w", err)
	}

	idx := slices.IndexFunc(pending, byAppID(appID))
	if idx == -1 {
		return models.BankApplication{}, ErrApplicationNotFound
	}

	updatedAt := s.now()
	app := pending[idx]
	app.Status = &status
	app.Remarks = &remarks
	app.UpdatedAt = &updatedAt

	if err = s.repo.SaveBankStatusPending(ctx, slices.Delete(pending, idx, idx+1)); err != nil {
		return models.BankApplication{}, fmt.Errorf("update bank status: %w", err)
	}

	history, err := s.repo.BankStatusHistory(ctx)
	if err != nil {
		return models.BankApplication{}, fmt.Errorf("update bank status: %w", err)
	}
	if err = s.repo.SaveBankStatusHistory(ctx, slices.Insert(history, 0, app)); err != nil {
		return models.BankApplication{}, fmt.Errorf("update bank status: %w", err)
	}

	bankHistory, err := s.repo.BankHistory(ctx)
	if err != nil {
		return models.BankApplication{}, fmt.Errorf("update bank status: %w", err)
	}
	if i := slices.IndexFunc(bankHistory, byAppID(appID)); i != -1 {
		bankHistory[i] = app
		if err = s.repo.SaveBankHistory(ctx, bankHistory); err != nil {
			return models.BankApplication{}, fmt.Errorf("update bank status: %w", err)
		}
	} else {
		s.log(ctx).Warn().Str("func", "statusService.UpdateBankStatus").Str("app_id", appID).
			Msg("application missing from bank history, ledger not updated")
	}

	s.log(ctx).Info().Str("func", "statusService.UpdateBankStatus").
		Str("app_id", appID).Str("status", string(status)).Msg("bank status recorded")
	return app, nil
}

func (s *statusService) GetStatusPending(ctx context.Context) ([]models.BankApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.repo.BankStatusPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("get status pending: %w", err)
	}
	return pending, nil
}

func (s *statusService) GetStatusHistory(ctx context.Context) ([]models.BankApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.repo.BankStatusHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("get status history: %w", err)
	}
	return history, nil
}

func (s *statusService) GetPendingApplication(ctx context.Context, appID string) (models.BankApplication, error) {
	pending, err := s.GetStatusPending(ctx)
	if err != nil {
		return models.BankApplication{}, err
	}

	idx := slices.IndexFunc(pending, byAppID(appID))
	if idx == -1 {
		return models.BankApplication{}, ErrApplicationNotFound
	}
	return pending[idx], nil
}

func byAppID(appID string) func(models.BankApplication) bool {
	return func(a models.BankApplication) bool { return a.AppID == appID }
}
