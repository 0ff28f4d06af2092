// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/loan-tracker/models"
)

// NavigateTo switches the active page. Payload, if set, is delivered to the
// new page right after navigation.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type loginResult struct {
	session models.ActiveSession
	err     error
}

type logoutMsg struct{}

type dashboardMsg struct {
	stats models.DashboardStats
	err   error
}

type itemsLoadedMsg[T any] struct {
	page  string
	items []T
	err   error
}

type savedMsg struct {
	notice string
	err    error
}

type noticeMsg struct {
	text string
}

type copiedMsg struct {
	text string
	err  error
}

type openLeadFormMsg struct {
	lead *models.Lead
}

type openChecklistMsg struct {
	record  models.DocumentRecord
	history bool
}

type openBankSelectMsg struct {
	record models.DocumentRecord
}

type openStatusFormMsg struct {
	app models.BankApplication
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
