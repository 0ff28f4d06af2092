// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/loan-tracker/internal/logger"
	"github.com/MKhiriev/loan-tracker/internal/store"
)

// Services groups every operation of the tracking store. All services built
// by [NewServices] share one lock, so operations of one process never
// interleave.
type Services struct {
	SessionService   SessionService
	LeadService      LeadService
	DocumentService  DocumentService
	BankService      BankService
	StatusService    StatusService
	DashboardService DashboardService
	SeedService      SeedService
	DashboardJob     DashboardRefreshJob
}

func NewServices(repo store.TrackingRepository, clock Clock, log *logger.Logger) *Services {
	c := newCore(repo, clock, log)
	dashboard := &dashboardService{core: c}

	return &Services{
		SessionService:   newSessionService(c),
		LeadService:      &leadService{core: c},
		DocumentService:  &documentService{core: c},
		BankService:      &bankService{core: c},
		StatusService:    &statusService{core: c},
		DashboardService: dashboard,
		SeedService:      &seedService{core: c},
		DashboardJob:     NewDashboardRefreshJob(dashboard, c.logger),
	}
}
