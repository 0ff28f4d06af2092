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

type documentService struct {
	*core
}

func NewDocumentService(repo store.TrackingRepository, clock Clock, log *logger.Logger) DocumentService {
	return &documentService{core: newCore(repo, clock, log)}
}

// SaveDocuments completes the checklist of a pending record. The record is
// removed from documentPending, prepended to documentHistory and appended to
// bankPending, each step persisted on its own.
func (s *documentService) SaveDocuments(ctx context.Context, serialNo int64, documents models.Documents) (models.DocumentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.repo.DocumentPending(ctx)
	if err != nil {
		return models.DocumentRecord{}, fmt.Errorf("save documents: %w", err)
	}

	idx := slices.IndexFunc(pending, bySerialNo(serialNo))
	if idx == -1 {
		return models.DocumentRecord{}, ErrDocumentNotFound
	}

	completedAt := s.now()
	record := pending[idx]
	record.Documents = documents.Clone()
	record.CompletedAt = &completedAt

	if err = s.repo.SaveDocumentPending(ctx, slices.Delete(pending, idx, idx+1)); err != nil {
		return models.DocumentRecord{}, fmt.Errorf("save documents: %w", err)
	}

	history, err := s.repo.DocumentHistory(ctx)
	if err != nil {
		return models.DocumentRecord{}, fmt.Errorf("save documents: %w", err)
	}
	if err = s.repo.SaveDocumentHistory(ctx, slices.Insert(history, 0, record)); err != nil {
		return models.DocumentRecord{}, fmt.Errorf("save documents: %w", err)
	}

	bankPending, err := s.repo.BankPending(ctx)
	if err != nil {
		return models.DocumentRecord{}, fmt.Errorf("save documents: %w", err)
	}
	if err = s.repo.SaveBankPending(ctx, append(bankPending, record)); err != nil {
		return models.DocumentRecord{}, fmt.Errorf("save documents: %w", err)
	}

	s.log(ctx).Info().Str("func", "documentService.SaveDocuments").
		Int64("serial_no", serialNo).Int("uploaded", documents.UploadedCount()).Msg("documents completed")
	return record, nil
}

// UpdateDocumentHistory replaces the checklist of a record already in
// history. The copy handed to the bank pipeline keeps its old checklist.
func (s *documentService) UpdateDocumentHistory(ctx context.Context, serialNo int64, documents models.Documents) (models.DocumentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.repo.DocumentHistory(ctx)
	if err != nil {
		return models.DocumentRecord{}, fmt.Errorf("update document history: %w", err)
	}

	idx := slices.IndexFunc(history, bySerialNo(serialNo))
	if idx == -1 {
		return models.DocumentRecord{}, ErrDocumentNotFound
	}

	history[idx].Documents = documents.Clone()
	if err = s.repo.SaveDocumentHistory(ctx, history); err != nil {
		return models.DocumentRecord{}, fmt.Errorf("update document history: %w", err)
	}

	s.log(ctx).Info().Str("func", "documentService.UpdateDocumentHistory").Int64("serial_no", serialNo).Msg("documents updated")
	return history[idx], nil
}

func (s *documentService) GetDocumentPending(ctx context.Context) ([]models.DocumentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending, err := s.repo.DocumentPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("get document pending: %w", err)
	}
	return pending, nil
}

func (s *documentService) GetDocumentHistory(ctx context.Context) ([]models.DocumentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.repo.DocumentHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("get document history: %w", err)
	}
	return history, nil
}

func (s *documentService) GetPendingRecord(ctx context.Context, serialNo int64) (models.DocumentRecord, error) {
	pending, err := s.GetDocumentPending(ctx)
	if err != nil {
		return models.DocumentRecord{}, err
	}
	return findRecord(pending, serialNo)
}

func (s *documentService) GetHistoryRecord(ctx context.Context, serialNo int64) (models.DocumentRecord, error) {
	history, err := s.GetDocumentHistory(ctx)
	if err != nil {
		return models.DocumentRecord{}, err
	}
	return findRecord(history, serialNo)
}

func bySerialNo(serialNo int64) func(models.DocumentRecord) bool {
	return func(r models.DocumentRecord) bool { return r.SerialNo == serialNo }
}

func findRecord(records []models.DocumentRecord, serialNo int64) (models.DocumentRecord, error) {
	idx := slices.IndexFunc(records, bySerialNo(serialNo))
	if idx == -1 {
		return models.DocumentRecord{}, ErrDocumentNotFound
	}
	return records[idx], nil
}
