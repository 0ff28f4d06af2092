// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/loan-tracker/internal/logger"
	"github.com/MKhiriev/loan-tracker/models"
)

type trackingRepository struct {
	kv     KeyValueStorage
	logger *logger.Logger
}

// NewTrackingRepository returns a [TrackingRepository] storing every
// collection as a JSON document in kv.
func NewTrackingRepository(kv KeyValueStorage, log *logger.Logger) TrackingRepository {
	return &trackingRepository{kv: kv, logger: log}
}

func (r *trackingRepository) Users(ctx context.Context) ([]models.User, error) {
	users, found, err := readJSON[[]models.User](ctx, r, KeyUsers)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrKeyNotFound
	}
	return users, nil
}

func (r *trackingRepository) SaveUsers(ctx context.Context, users []models.User) error {
	return writeJSON(ctx, r, KeyUsers, users)
}

func (r *trackingRepository) Leads(ctx context.Context) ([]models.Lead, error) {
	return readList[models.Lead](ctx, r, KeyLeads)
}

func (r *trackingRepository) SaveLeads(ctx context.Context, leads []models.Lead) error {
	return writeJSON(ctx, r, KeyLeads, nonNil(leads))
}

func (r *trackingRepository) DocumentPending(ctx context.Context) ([]models.DocumentRecord, error) {
	return readList[models.DocumentRecord](ctx, r, KeyDocumentPending)
}

func (r *trackingRepository) SaveDocumentPending(ctx context.Context, records []models.DocumentRecord) error {
	return writeJSON(ctx, r, KeyDocumentPending, nonNil(records))
}

func (r *trackingRepository) DocumentHistory(ctx context.Context) ([]models.DocumentRecord, error) {
	return readList[models.DocumentRecord](ctx, r, KeyDocumentHistory)
}

func (r *trackingRepository) SaveDocumentHistory(ctx context.Context, records []models.DocumentRecord) error {
	return writeJSON(ctx, r, KeyDocumentHistory, nonNil(records))
}

func (r *trackingRepository) BankPending(ctx context.Context) ([]models.DocumentRecord, error) {
	return readList[models.DocumentRecord](ctx, r, KeyBankPending)
}

func (r *trackingRepository) SaveBankPending(ctx context.Context, records []models.DocumentRecord) error {
	return writeJSON(ctx, r, KeyBankPending, nonNil(records))
}

func (r *trackingRepository) BankHistory(ctx context.Context) ([]models.BankApplication, error) {
	return readList[models.BankApplication](ctx, r, KeyBankHistory)
}

func (r *trackingRepository) SaveBankHistory(ctx context.Context, apps []models.BankApplication) error {
	return writeJSON(ctx, r, KeyBankHistory, nonNil(apps))
}

func (r *trackingRepository) BankStatusPending(ctx context.Context) ([]models.BankApplication, error) {
	return readList[models.BankApplication](ctx, r, KeyBankStatusPending)
}

func (r *trackingRepository) SaveBankStatusPending(ctx context.Context, apps []models.BankApplication) error {
	return writeJSON(ctx, r, KeyBankStatusPending, nonNil(apps))
}

func (r *trackingRepository) BankStatusHistory(ctx context.Context) ([]models.BankApplication, error) {
	return readList[models.BankApplication](ctx, r, KeyBankStatusHistory)
}

func (r *trackingRepository) SaveBankStatusHistory(ctx context.Context, apps []models.BankApplication) error {
	return writeJSON(ctx, r, KeyBankStatusHistory, nonNil(apps))
}

func (r *trackingRepository) ActiveSession(ctx context.Context) (*models.ActiveSession, error) {
	session, found, err := readJSON[models.ActiveSession](ctx, r, KeyActiveUser)
	if err != nil || !found {
		return nil, err
	}
	return &session, nil
}

func (r *trackingRepository) SaveActiveSession(ctx context.Context, session models.ActiveSession) error {
	return writeJSON(ctx, r, KeyActiveUser, session)
}

func (r *trackingRepository) RemoveActiveSession(ctx context.Context) error {
	if err := r.kv.Remove(ctx, KeyActiveUser); err != nil {
		r.logger.Err(err).Str("func", "trackingRepository.RemoveActiveSession").Msg("error removing active session")
		return fmt.Errorf("remove %s: %w", KeyActiveUser, err)
	}
	return nil
}

func (r *trackingRepository) LastSerialNo(ctx context.Context) (int64, error) {
	serialNo, _, err := readJSON[int64](ctx, r, KeyLastSerialNo)
	return serialNo, err
}

func (r *trackingRepository) SaveLastSerialNo(ctx context.Context, serialNo int64) error {
	return writeJSON(ctx, r, KeyLastSerialNo, serialNo)
}

func (r *trackingRepository) LastBankAppNo(ctx context.Context) (map[models.BankName]int64, error) {
	counters, _, err := readJSON[map[models.BankName]int64](ctx, r, KeyLastBankAppNo)
	if err != nil {
		return nil, err
	}
	if counters == nil {
		counters = make(map[models.BankName]int64)
	}
	return counters, nil
}

func (r *trackingRepository) SaveLastBankAppNo(ctx context.Context, counters map[models.BankName]int64) error {
	if counters == nil {
		counters = make(map[models.BankName]int64)
	}
	return writeJSON(ctx, r, KeyLastBankAppNo, counters)
}

// IsInitialized reports whether the first-run flag is present, whatever its value.
func (r *trackingRepository) IsInitialized(ctx context.Context) (bool, error) {
	_, err := r.kv.Get(ctx, KeyInitialized)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", KeyInitialized, err)
	}
	return true, nil
}

func (r *trackingRepository) MarkInitialized(ctx context.Context) error {
	return writeJSON(ctx, r, KeyInitialized, true)
}

// readJSON decodes the value stored under key. found is false when the key
// is absent.
func readJSON[T any](ctx context.Context, r *trackingRepository, key string) (value T, found bool, err error) {
	raw, err := r.kv.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return value, false, nil
	}
	if err != nil {
		r.logger.Err(err).Str("func", "trackingRepository.readJSON").Str("key", key).Msg("error reading key")
		return value, false, fmt.Errorf("read %s: %w", key, err)
	}

	if err = json.Unmarshal(raw, &value); err != nil {
		r.logger.Err(err).Str("func", "trackingRepository.readJSON").Str("key", key).Msg("stored value cannot be decoded")
		return value, true, fmt.Errorf("%w: %s: %w", ErrCorruptedValue, key, err)
	}
	return value, true, nil
}

func readList[T any](ctx context.Context, r *trackingRepository, key string) ([]T, error) {
	list, _, err := readJSON[[]T](ctx, r, key)
	if err != nil {
		return nil, err
	}
	return nonNil(list), nil
}

func writeJSON(ctx context.Context, r *trackingRepository, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err = r.kv.Set(ctx, key, raw); err != nil {
		r.logger.Err(err).Str("func", "trackingRepository.writeJSON").Str("key", key).Msg("error writing key")
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func nonNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
