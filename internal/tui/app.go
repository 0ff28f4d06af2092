// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/loan-tracker/models"
)

const (
	pageLogin           = "login"
	pageMenu            = "menu"
	pageDashboard       = "dashboard"
	pageLeads           = "leads"
	pageLeadForm        = "lead-form"
	pageDocumentPending = "documents-pending"
	pageDocumentHistory = "documents-history"
	pageChecklist       = "checklist"
	pageBankPending     = "bank-pending"
	pageBankSelect      = "bank-select"
	pageBankHistory     = "bank-history"
	pageStatusPending   = "status-pending"
	pageStatusForm      = "status-form"
	pageStatusHistory   = "status-history"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global ctrl+c quit and the version overlay
// 3) handles NavigateTo messages
// 4) routes dashboard refreshes to the dashboard page
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string

	session   *models.ActiveSession
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	quitByUser    bool
	logout        bool
}

// NewRootModel registers all pages and opens startPage. session is shown in
// the header and may be nil before login.
func NewRootModel(pages map[string]tea.Model, startPage string, session *models.ActiveSession, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		session:   session,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	page, ok := r.pages[r.current]
	if !ok {
		return nil
	}
	return page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.current == pageMenu:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = msg.Page

		if msg.Payload != nil {
			payload := msg.Payload
			return r, tea.Batch(next.Init(), func() tea.Msg { return payload })
		}
		return r, next.Init()

	case loginResult:
		if msg.err == nil {
			session := msg.session
			r.session = &session
			return r, tea.Quit
		}

	case logoutMsg:
		r.logout = true
		return r, tea.Quit

	case dashboardMsg:
		if r.current != pageDashboard {
			if page, ok := r.pages[pageDashboard]; ok {
				r.pages[pageDashboard], _ = page.Update(msg)
			}
			return r, nil
		}
	}

	page, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}

	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	var b strings.Builder
	if r.session != nil {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%s · %s account", r.session.UserID, r.session.Role)))
		b.WriteString("\n")
	}

	page, ok := r.pages[r.current]
	if !ok {
		b.WriteString(renderPage("LOAN TRACKER", "", ""))
	} else {
		b.WriteString(page.View())
	}
	return appStyle.Render(b.String())
}
