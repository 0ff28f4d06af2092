// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/loan-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService matches credentials against the user list and keeps the
// single active session.
type SessionService interface {
	// ValidateCredentials returns the user with the given id and password or
	// [ErrInvalidCredentials].
	ValidateCredentials(ctx context.Context, id, password string) (models.User, error)
	// Login persists a new active session for user, replacing any other.
	Login(ctx context.Context, user models.User) (models.ActiveSession, error)
	// Logout removes the active session.
	Logout(ctx context.Context) error
	// GetActiveSession returns the active session or nil.
	GetActiveSession(ctx context.Context) (*models.ActiveSession, error)
}

// LeadService registers and edits leads.
type LeadService interface {
	AddLead(ctx context.Context, input models.LeadInput) (models.Lead, error)
	UpdateLead(ctx context.Context, serialNo int64, patch models.LeadPatch) (models.Lead, error)
	GetLeads(ctx context.Context) ([]models.Lead, error)
	GetLead(ctx context.Context, serialNo int64) (models.Lead, error)
}

// DocumentService moves document records from the pending queue to history.
type DocumentService interface {
	SaveDocuments(ctx context.Context, serialNo int64, documents models.Documents) (models.DocumentRecord, error)
	UpdateDocumentHistory(ctx context.Context, serialNo int64, documents models.Documents) (models.DocumentRecord, error)
	GetDocumentPending(ctx context.Context) ([]models.DocumentRecord, error)
	GetDocumentHistory(ctx context.Context) ([]models.DocumentRecord, error)
	GetPendingRecord(ctx context.Context, serialNo int64) (models.DocumentRecord, error)
	GetHistoryRecord(ctx context.Context, serialNo int64) (models.DocumentRecord, error)
}

// BankService fans a completed document record out into bank applications.
type BankService interface {
	ApplyToBanks(ctx context.Context, record models.DocumentRecord, banks []models.BankName) ([]models.BankApplication, error)
	GetBankPending(ctx context.Context) ([]models.DocumentRecord, error)
	GetBankHistory(ctx context.Context) ([]models.BankApplication, error)
	GetBankPendingRecord(ctx context.Context, serialNo int64) (models.DocumentRecord, error)
}

// StatusService records the final bank decision of an application.
type StatusService interface {
	UpdateBankStatus(ctx context.Context, appID string, status models.BankStatus, remarks string) (models.BankApplication, error)
	GetStatusPending(ctx context.Context) ([]models.BankApplication, error)
	GetStatusHistory(ctx context.Context) ([]models.BankApplication, error)
	GetPendingApplication(ctx context.Context, appID string) (models.BankApplication, error)
}

// DashboardService computes the dashboard view from live collections.
type DashboardService interface {
	Stats(ctx context.Context) (models.DashboardStats, error)
}

// SeedService populates an empty storage with demo data exactly once.
type SeedService interface {
	Initialize(ctx context.Context) error
}

// DashboardRefreshJob recomputes the dashboard periodically and hands every
// result to sink.
type DashboardRefreshJob interface {
	Start(ctx context.Context, interval time.Duration, sink func(models.DashboardStats, error))
	Stop()
}
