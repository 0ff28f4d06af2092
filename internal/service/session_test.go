// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/loan-tracker/internal/logger"
	"github.com/MKhiriev/loan-tracker/internal/mock"
	"github.com/MKhiriev/loan-tracker/internal/store"
	"github.com/MKhiriev/loan-tracker/models"
)

func TestSessionService_ValidateCredentials_DefaultUsers(t *testing.T) {
	svc, _, _ := newTestStore(t)
	ctx := context.Background()

	user, err := svc.SessionService.ValidateCredentials(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	user, err = svc.SessionService.ValidateCredentials(ctx, "user", "user123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
}

func TestSessionService_ValidateCredentials_Invalid(t *testing.T) {
	svc, _, _ := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		id       string
		password string
	}{
		{"wrong password", "admin", "admin"},
		{"unknown user", "root", "admin123"},
		{"empty id", "", "admin123"},
		{"empty password", "admin", ""},
		{"case sensitive", "Admin", "admin123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SessionService.ValidateCredentials(ctx, tt.id, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestSessionService_ValidateCredentials_StoredUsersReplaceDefaults(t *testing.T) {
	svc, repo, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveUsers(ctx, []models.User{{ID: "ops", Password: "pw", Role: models.RoleUser}}))

	_, err := svc.SessionService.ValidateCredentials(ctx, "ops", "pw")
	require.NoError(t, err)

	_, err = svc.SessionService.ValidateCredentials(ctx, "admin", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSessionService_ValidateCredentials_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockTrackingRepository(ctrl)
	svc := NewSessionService(repo, fixedClock, logger.Nop())
	ctx := context.Background()

	storageErr := errors.New("disk unreadable")
	repo.EXPECT().Users(ctx).Return(nil, storageErr)

	_, err := svc.ValidateCredentials(ctx, "admin", "admin123")
	require.Error(t, err)
	assert.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestSessionService_LoginLogout(t *testing.T) {
	svc, _, _ := newTestStore(t)
	ctx := context.Background()

	session, err := svc.SessionService.GetActiveSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, session)

	admin := DefaultUsers()[0]
	first, err := svc.SessionService.Login(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, "admin", first.UserID)
	assert.Equal(t, models.RoleAdmin, first.Role)
	assert.Equal(t, fixedNow, first.LoginTime)
	_, err = uuid.Parse(first.SessionID)
	assert.NoError(t, err)

	second, err := svc.SessionService.Login(ctx, DefaultUsers()[1])
	require.NoError(t, err)

	active, err := svc.SessionService.GetActiveSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second, *active, "a new login replaces the previous session")

	require.NoError(t, svc.SessionService.Logout(ctx))
	active, err = svc.SessionService.GetActiveSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)

	assert.NoError(t, svc.SessionService.Logout(ctx), "logout without a session is a no-op")
}

func TestSessionService_Login_QuotaExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := mock.NewMockKeyValueStorage(ctrl)
	repo := store.NewTrackingRepository(kv, logger.Nop())
	svc := NewSessionService(repo, fixedClock, logger.Nop())
	ctx := context.Background()

	kv.EXPECT().Set(ctx, store.KeyActiveUser, gomock.Any()).Return(store.ErrQuotaExceeded)

	_, err := svc.Login(ctx, DefaultUsers()[0])
	assert.ErrorIs(t, err, store.ErrQuotaExceeded)
}
