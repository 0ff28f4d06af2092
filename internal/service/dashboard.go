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

const recentItemsLimit = 5

type dashboardService struct {
	*core
}

func NewDashboardService(repo store.TrackingRepository, log *logger.Logger) DashboardService {
	return &dashboardService{core: newCore(repo, nil, log)}
}

// Stats reads every source collection and derives the counters and recent
// lists. Nothing is cached.
func (s *dashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	leads, err := s.repo.Leads(ctx)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}
	documentPending, err := s.repo.DocumentPending(ctx)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}
	documentHistory, err := s.repo.DocumentHistory(ctx)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}
	bankHistory, err := s.repo.BankHistory(ctx)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}
	statusHistory, err := s.repo.BankStatusHistory(ctx)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}

	stats := models.DashboardStats{
		TotalLeads:        len(leads),
		DocumentPending:   len(documentPending),
		DocumentCompleted: len(documentHistory),
		BankApplications:  len(bankHistory),
		RecentLeads:       lastReversed(leads, recentItemsLimit),
		RecentDocuments:   firstN(documentHistory, recentItemsLimit),
		RecentBankUpdates: firstN(statusHistory, recentItemsLimit),
	}
	for _, app := range statusHistory {
		if app.Status == nil {
			continue
		}
		switch {
		case app.Status.IsApproved():
			stats.BankApproved++
		case *app.Status == models.StatusRejected:
			stats.BankRejected++
		}
	}

	return stats, nil
}

func firstN[T any](list []T, n int) []T {
	return slices.Clone(list[:min(n, len(list))])
}

// lastReversed returns the last n items, most recent first.
func lastReversed[T any](list []T, n int) []T {
	out := slices.Clone(list[len(list)-min(n, len(list)):])
	slices.Reverse(out)
	return out
}
