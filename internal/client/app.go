// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/loan-tracker/internal/config"
	"github.com/MKhiriev/loan-tracker/internal/logger"
	"github.com/MKhiriev/loan-tracker/internal/service"
	"github.com/MKhiriev/loan-tracker/internal/utils"
)

var ErrNilDependency = errors.New("client: nil dependency")

var _ Client = (*App)(nil)

type App struct {
	services *service.Services
	ui       UI
	cfg      *config.StructuredConfig
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui UI, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil || cfg == nil {
		return nil, ErrNilDependency
	}
	if log == nil {
		log = logger.Nop()
	}
	return &App{services: services, ui: ui, cfg: cfg, logger: log}, nil
}

// Run seeds the storage unless disabled, then alternates between login and
// the main loop until the user quits without logging out. A session left
// by a previous run is resumed without asking for credentials.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.App.SkipSeed {
		a.logger.Info().Str("func", "App.Run").Msg("seeding disabled")
	} else if err := a.services.SeedService.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}

	for {
		session, err := a.services.SessionService.GetActiveSession(ctx)
		if err != nil {
			return fmt.Errorf("restore session: %w", err)
		}

		if session == nil {
			s, err := a.ui.LoginFlow(ctx)
			if err != nil {
				return err
			}
			session = &s
		} else {
			a.logger.Info().Str("func", "App.Run").Str("user_id", session.UserID).Msg("session restored")
		}

		sessionLog := a.logger.WithSession(session.SessionID, session.UserID)
		sessionCtx := sessionLog.WithContext(utils.WithSession(ctx, *session))
		sessionLog.Info().Str("func", "App.Run").Str("role", string(session.Role)).Msg("session started")

		logout, err := a.ui.MainLoop(sessionCtx, *session, a.cfg.Workers.DashboardRefreshInterval)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		if err = a.services.SessionService.Logout(sessionCtx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		sessionLog.Info().Str("func", "App.Run").Msg("logged out")
	}
}
