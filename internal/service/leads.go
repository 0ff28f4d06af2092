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

type leadService struct {
	*core
}

func NewLeadService(repo store.TrackingRepository, clock Clock, log *logger.Logger) LeadService {
	return &leadService{core: newCore(repo, clock, log)}
}

// AddLead allocates the next serial number and registers the lead together
// with its pending document record. The three writes (leads, lastSerialNo,
// documentPending) are independent: a failure leaves earlier ones applied.
func (s *leadService) AddLead(ctx context.Context, input models.LeadInput) (models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	leads, err := s.repo.Leads(ctx)
	if err != nil {
		return models.Lead{}, fmt.Errorf("add lead: %w", err)
	}
	lastSerialNo, err := s.repo.LastSerialNo(ctx)
	if err != nil {
		return models.Lead{}, fmt.Errorf("add lead: %w", err)
	}

	lead := models.Lead{
		SerialNo:        lastSerialNo + 1,
		FullName:        input.FullName,
		Phone:           input.Phone,
		Email:           input.Email,
		PanCard:         input.PanCard,
		LoanType:        input.LoanType,
		RequestedAmount: input.RequestedAmount,
		MonthlyIncome:   input.MonthlyIncome,
		Notes:           copyString(input.Notes),
		CreatedAt:       s.now(),
	}

	if err = s.repo.SaveLeads(ctx, append(leads, lead)); err != nil {
		return models.Lead{}, fmt.Errorf("add lead: %w", err)
	}
	if err = s.repo.SaveLastSerialNo(ctx, lead.SerialNo); err != nil {
		return models.Lead{}, fmt.Errorf("add lead: %w", err)
	}

	pending, err := s.repo.DocumentPending(ctx)
	if err != nil {
		return models.Lead{}, fmt.Errorf("add lead: %w", err)
	}
	if err = s.repo.SaveDocumentPending(ctx, append(pending, lead.NewDocumentRecord())); err != nil {
		return models.Lead{}, fmt.Errorf("add lead: %w", err)
	}

	s.log(ctx).Info().Str("func", "leadService.AddLead").Int64("serial_no", lead.SerialNo).Msg("lead registered")
	return lead, nil
}

// UpdateLead merges patch into the stored lead. Document and bank copies of
// the lead are left untouched.
func (s *leadService) UpdateLead(ctx context.Context, serialNo int64, patch models.LeadPatch) (models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	leads, err := s.repo.Leads(ctx)
	if err != nil {
		return models.Lead{}, fmt.Errorf("update lead: %w", err)
	}

	idx := slices.IndexFunc(leads, func(l models.Lead) bool { return l.SerialNo == serialNo })
	if idx == -1 {
		return models.Lead{}, ErrLeadNotFound
	}

	leads[idx] = patch.Apply(leads[idx])
	if err = s.repo.SaveLeads(ctx, leads); err != nil {
		return models.Lead{}, fmt.Errorf("update lead: %w", err)
	}

	s.log(ctx).Info().Str("func", "leadService.UpdateLead").Int64("serial_no", serialNo).Msg("lead updated")
	return leads[idx], nil
}

func (s *leadService) GetLeads(ctx context.Context) ([]models.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	leads, err := s.repo.Leads(ctx)
	if err != nil {
		return nil, fmt.Errorf("get leads: %w", err)
	}
	return leads, nil
}

func (s *leadService) GetLead(ctx context.Context, serialNo int64) (models.Lead, error) {
	leads, err := s.GetLeads(ctx)
	if err != nil {
		return models.Lead{}, err
	}

	idx := slices.IndexFunc(leads, func(l models.Lead) bool { return l.SerialNo == serialNo })
	if idx == -1 {
		return models.Lead{}, ErrLeadNotFound
	}
	return leads[idx], nil
}
