// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/loan-tracker/internal/logger"
	"github.com/MKhiriev/loan-tracker/internal/store"
	"github.com/MKhiriev/loan-tracker/models"
)

const day = 24 * time.Hour

// DefaultUsers are the built-in accounts, also used when no user list was
// ever stored.
func DefaultUsers() []models.User {
	return []models.User{
		{ID: "admin", Password: "admin123", Role: models.RoleAdmin},
		{ID: "user", Password: "user123", Role: models.RoleUser},
	}
}

type seedService struct {
	*core
}

func NewSeedService(repo store.TrackingRepository, clock Clock, log *logger.Logger) SeedService {
	return &seedService{core: newCore(repo, clock, log)}
}

// Initialize writes the demo data set when the initialized flag is absent and
// sets the flag last. Once the flag exists it does nothing.
func (s *seedService) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	initialized, err := s.repo.IsInitialized(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if initialized {
		s.log(ctx).Debug().Str("func", "seedService.Initialize").Msg("storage already initialized")
		return nil
	}

	data := newDemoData(s.now())
	steps := []struct {
		name string
		save func() error
	}{
		{store.KeyUsers, func() error { return s.repo.SaveUsers(ctx, DefaultUsers()) }},
		{store.KeyLeads, func() error { return s.repo.SaveLeads(ctx, data.leads) }},
		{store.KeyDocumentPending, func() error { return s.repo.SaveDocumentPending(ctx, data.documentPending) }},
		{store.KeyDocumentHistory, func() error { return s.repo.SaveDocumentHistory(ctx, data.documentHistory) }},
		{store.KeyBankPending, func() error { return s.repo.SaveBankPending(ctx, data.bankPending) }},
		{store.KeyBankHistory, func() error { return s.repo.SaveBankHistory(ctx, data.bankHistory) }},
		{store.KeyBankStatusPending, func() error { return s.repo.SaveBankStatusPending(ctx, data.statusPending) }},
		{store.KeyBankStatusHistory, func() error { return s.repo.SaveBankStatusHistory(ctx, data.statusHistory) }},
		{store.KeyLastSerialNo, func() error { return s.repo.SaveLastSerialNo(ctx, data.lastSerialNo) }},
		{store.KeyLastBankAppNo, func() error { return s.repo.SaveLastBankAppNo(ctx, data.lastBankAppNo) }},
		{store.KeyInitialized, func() error { return s.repo.MarkInitialized(ctx) }},
	}

	for _, step := range steps {
		if err = step.save(); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
	}

	s.log(ctx).Info().Str("func", "seedService.Initialize").Int("leads", len(data.leads)).Msg("storage seeded with demo data")
	return nil
}

type demoData struct {
	leads           []models.Lead
	documentPending []models.DocumentRecord
	documentHistory []models.DocumentRecord
	bankPending     []models.DocumentRecord
	bankHistory     []models.BankApplication
	statusPending   []models.BankApplication
	statusHistory   []models.BankApplication
	lastSerialNo    int64
	lastBankAppNo   map[models.BankName]int64
}

// newDemoData builds the demo data set with timestamps relative to now.
func newDemoData(now time.Time) demoData {
	strPtr := func(s string) *string { return &s }

	leads := []models.Lead{
		{
			SerialNo: 1, FullName: "Rajesh Kumar", Phone: "9876543210", Email: "rajesh.kumar@email.com",
			PanCard: "ABCDE1234F", LoanType: models.HomeLoan, RequestedAmount: 5000000, MonthlyIncome: 150000,
			Notes: strPtr("Looking for 20-year term"), CreatedAt: now.Add(-2 * day),
		},
		{
			SerialNo: 2, FullName: "Priya Sharma", Phone: "9876543211", Email: "priya.sharma@email.com",
			PanCard: "FGHIJ5678K", LoanType: models.PersonalLoan, RequestedAmount: 500000, MonthlyIncome: 75000,
			Notes: strPtr("For wedding expenses"), CreatedAt: now.Add(-1 * day),
		},
		{
			SerialNo: 3, FullName: "Amit Patel", Phone: "9876543212", Email: "amit.patel@email.com",
			PanCard: "KLMNO9012P", LoanType: models.BusinessLoan, RequestedAmount: 2000000, MonthlyIncome: 200000,
			Notes: strPtr("Expanding retail business"), CreatedAt: now.Add(-3 * day),
		},
		{
			SerialNo: 4, FullName: "Sneha Reddy", Phone: "9876543213", Email: "sneha.reddy@email.com",
			PanCard: "QRSTU3456V", LoanType: models.CarLoan, RequestedAmount: 800000, MonthlyIncome: 90000,
			Notes: strPtr("New SUV purchase"), CreatedAt: now,
		},
		{
			SerialNo: 5, FullName: "Vikram Singh", Phone: "9876543214", Email: "vikram.singh@email.com",
			PanCard: "WXYZ7890A", LoanType: models.EducationLoan, RequestedAmount: 1500000, MonthlyIncome: 60000,
			Notes: strPtr("MBA program abroad"), CreatedAt: now,
		},
	}

	completedAt := now.Add(-1 * day)
	completed := leads[2].NewDocumentRecord()
	completed.Documents = models.Documents{
		models.SlotIDProof:        {Uploaded: true, FileName: strPtr("aadhaar.pdf")},
		models.SlotAddressProof:   {Uploaded: true, FileName: strPtr("electricity_bill.pdf")},
		models.SlotSalarySlips:    {Uploaded: true, FileName: strPtr("salary_slips.pdf")},
		models.SlotBankStatements: {Uploaded: true, FileName: strPtr("bank_statement.pdf")},
		models.SlotPhoto:          {Uploaded: true, FileName: strPtr("photo.jpg")},
		models.SlotSignature:      {Uploaded: true, FileName: strPtr("signature.jpg")},
		models.SlotOtherDocuments: {Uploaded: false},
	}
	completed.CompletedAt = &completedAt

	bankCompleted := completed
	bankCompleted.Documents = completed.Documents.Clone()

	application := func(lead models.Lead, bank models.BankName, appliedAt time.Time) models.BankApplication {
		return models.BankApplication{
			AppID:        models.BankAppID(bank, 1),
			SerialNo:     lead.SerialNo,
			CustomerName: lead.FullName,
			Phone:        lead.Phone,
			BankName:     bank,
			LoanType:     lead.LoanType,
			Amount:       lead.RequestedAmount,
			AppliedAt:    appliedAt,
		}
	}

	appliedAt := now.Add(-2 * day)
	bankHistory := []models.BankApplication{
		application(leads[3], models.BankHDFC, appliedAt),
		application(leads[3], models.BankICICI, appliedAt),
	}
	statusPending := []models.BankApplication{
		application(leads[3], models.BankHDFC, appliedAt),
		application(leads[3], models.BankICICI, appliedAt),
	}

	approved := models.StatusApproved
	updatedAt := now.Add(-1 * day)
	decided := application(leads[4], models.BankSBI, now.Add(-5*day))
	decided.Status = &approved
	decided.Remarks = strPtr("All documents verified")
	decided.UpdatedAt = &updatedAt

	return demoData{
		leads:           leads,
		documentPending: []models.DocumentRecord{leads[0].NewDocumentRecord(), leads[1].NewDocumentRecord()},
		documentHistory: []models.DocumentRecord{completed},
		bankPending:     []models.DocumentRecord{bankCompleted},
		bankHistory:     bankHistory,
		statusPending:   statusPending,
		statusHistory:   []models.BankApplication{decided},
		lastSerialNo:    5,
		lastBankAppNo: map[models.BankName]int64{
			models.BankHDFC:  1,
			models.BankICICI: 1,
			models.BankSBI:   1,
		},
	}
}
