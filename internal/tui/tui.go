// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the tracker. It renders every
// staff workflow on top of the services and never touches storage directly.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/loan-tracker/internal/logger"
	"github.com/MKhiriev/loan-tracker/internal/service"
	"github.com/MKhiriev/loan-tracker/internal/validators"
	"github.com/MKhiriev/loan-tracker/models"
)

type TUI struct {
	services  *service.Services
	validator validators.Validator
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, validator validators.Validator, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{services: services, validator: validator, buildInfo: buildInfo, logger: log}, nil
}

// LoginFlow shows the login page until valid credentials are entered and
// returns the new active session.
func (t *TUI) LoginFlow(ctx context.Context) (models.ActiveSession, error) {
	pages := map[string]tea.Model{
		pageLogin: NewLoginModel(ctx, t.services.SessionService, t.logger),
	}

	root := NewRootModel(pages, pageLogin, nil, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.ActiveSession{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.ActiveSession{}, tea.ErrProgramKilled
	}
	if result.quitByUser || result.session == nil {
		return models.ActiveSession{}, ErrUserQuit
	}

	return *result.session, nil
}

// MainLoop runs the main menu for session. The dashboard is recomputed in the
// background every refreshInterval while the loop runs. It reports whether
// the user chose to log out.
func (t *TUI) MainLoop(ctx context.Context, session models.ActiveSession, refreshInterval time.Duration) (logout bool, err error) {
	root := NewRootModel(t.mainPages(ctx), pageMenu, &session, t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	t.services.DashboardJob.Start(ctx, refreshInterval, func(stats models.DashboardStats, err error) {
		program.Send(dashboardMsg{stats: stats, err: err})
	})
	defer t.services.DashboardJob.Stop()

	finalModel, err := program.Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func (t *TUI) mainPages(ctx context.Context) map[string]tea.Model {
	s := t.services
	return map[string]tea.Model{
		pageMenu:            NewMenuModel(),
		pageDashboard:       NewDashboardModel(ctx, s.DashboardService),
		pageLeads:           newLeadsPage(ctx, s.LeadService),
		pageLeadForm:        NewLeadFormModel(ctx, s.LeadService, t.validator),
		pageDocumentPending: newDocumentPendingPage(ctx, s.DocumentService),
		pageDocumentHistory: newDocumentHistoryPage(ctx, s.DocumentService),
		pageChecklist:       NewChecklistModel(ctx, s.DocumentService, t.validator),
		pageBankPending:     newBankPendingPage(ctx, s.BankService),
		pageBankSelect:      NewBankSelectModel(ctx, s.BankService, t.validator),
		pageBankHistory:     newBankHistoryPage(ctx, s.BankService),
		pageStatusPending:   newStatusPendingPage(ctx, s.StatusService),
		pageStatusForm:      NewStatusFormModel(ctx, s.StatusService, t.validator),
		pageStatusHistory:   newStatusHistoryPage(ctx, s.StatusService),
	}
}
