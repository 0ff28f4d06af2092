// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/loan-tracker/internal/config"
	"github.com/MKhiriev/loan-tracker/internal/logger"
	"github.com/MKhiriev/loan-tracker/internal/mock"
	"github.com/MKhiriev/loan-tracker/internal/service"
	"github.com/MKhiriev/loan-tracker/internal/utils"
	"github.com/MKhiriev/loan-tracker/models"
)

// scriptedUI replays a fixed sequence of logins and main loop outcomes.
type scriptedUI struct {
	logins   []models.ActiveSession
	loginErr error
	logouts  []bool

	loginCalls int
	loops      []models.ActiveSession
	intervals  []time.Duration
}

func (u *scriptedUI) LoginFlow(context.Context) (models.ActiveSession, error) {
	if u.loginErr != nil {
		return models.ActiveSession{}, u.loginErr
	}
	s := u.logins[u.loginCalls]
	u.loginCalls++
	return s, nil
}

func (u *scriptedUI) MainLoop(ctx context.Context, session models.ActiveSession, interval time.Duration) (bool, error) {
	if fromCtx, ok := utils.GetSessionFromContext(ctx); !ok || fromCtx != session {
		return false, assert.AnError
	}
	u.loops = append(u.loops, session)
	u.intervals = append(u.intervals, interval)
	logout := u.logouts[0]
	u.logouts = u.logouts[1:]
	return logout, nil
}

type appMocks struct {
	sessions *mock.MockSessionService
	seed     *mock.MockSeedService
}

func newTestApp(t *testing.T, ui UI, skipSeed bool) (*App, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := appMocks{
		sessions: mock.NewMockSessionService(ctrl),
		seed:     mock.NewMockSeedService(ctrl),
	}
	services := &service.Services{SessionService: m.sessions, SeedService: m.seed}

	cfg := &config.StructuredConfig{}
	cfg.App.SkipSeed = skipSeed
	cfg.Workers.DashboardRefreshInterval = 2 * time.Second

	app, err := NewApp(services, ui, cfg, logger.Nop())
	require.NoError(t, err)
	return app, m
}

func TestNewApp_IsClient(t *testing.T) {
	app, _ := newTestApp(t, &scriptedUI{}, true)
	assert.Implements(t, (*Client)(nil), app)
}

func TestNewApp_NilDependency(t *testing.T) {
	_, err := NewApp(nil, &scriptedUI{}, &config.StructuredConfig{}, nil)
	assert.ErrorIs(t, err, ErrNilDependency)
}

func TestApp_Run_RestoresSession(t *testing.T) {
	session := models.ActiveSession{UserID: "admin", Role: models.RoleAdmin}
	ui := &scriptedUI{logouts: []bool{false}}
	app, m := newTestApp(t, ui, false)

	m.seed.EXPECT().Initialize(gomock.Any()).Return(nil)
	m.sessions.EXPECT().GetActiveSession(gomock.Any()).Return(&session, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Zero(t, ui.loginCalls, "no login prompt for a stored session")
	assert.Equal(t, []models.ActiveSession{session}, ui.loops)
	assert.Equal(t, []time.Duration{2 * time.Second}, ui.intervals)
}

func TestApp_Run_LoginLogoutLogin(t *testing.T) {
	first := models.ActiveSession{UserID: "admin", Role: models.RoleAdmin}
	second := models.ActiveSession{UserID: "user", Role: models.RoleUser}
	ui := &scriptedUI{logins: []models.ActiveSession{first, second}, logouts: []bool{true, false}}
	app, m := newTestApp(t, ui, true)

	gomock.InOrder(
		m.sessions.EXPECT().GetActiveSession(gomock.Any()).Return(nil, nil),
		m.sessions.EXPECT().Logout(gomock.Any()).Return(nil),
		m.sessions.EXPECT().GetActiveSession(gomock.Any()).Return(nil, nil),
	)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 2, ui.loginCalls)
	assert.Equal(t, []models.ActiveSession{first, second}, ui.loops)
}

func TestApp_Run_SeedError(t *testing.T) {
	app, m := newTestApp(t, &scriptedUI{}, false)
	m.seed.EXPECT().Initialize(gomock.Any()).Return(assert.AnError)

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestApp_Run_UserQuitsAtLogin(t *testing.T) {
	ui := &scriptedUI{loginErr: assert.AnError}
	app, m := newTestApp(t, ui, true)
	m.sessions.EXPECT().GetActiveSession(gomock.Any()).Return(nil, nil)

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, ui.loops)
}

func TestApp_Run_SessionReadError(t *testing.T) {
	app, m := newTestApp(t, &scriptedUI{}, true)
	m.sessions.EXPECT().GetActiveSession(gomock.Any()).Return(nil, assert.AnError)

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
