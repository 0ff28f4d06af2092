// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/loan-tracker/internal/app"
	"github.com/MKhiriev/loan-tracker/internal/service"
	"github.com/MKhiriev/loan-tracker/internal/utils"
	"github.com/MKhiriev/loan-tracker/models"
)

// DashboardModel shows the counters and recent activity. It is refreshed on
// every visit and by the background refresh job.
type DashboardModel struct {
	ctx       context.Context
	dashboard service.DashboardService

	stats   models.DashboardStats
	loaded  bool
	loading bool
	spinner spinner.Model
	errMsg  string
}

func NewDashboardModel(ctx context.Context, dashboard service.DashboardService) *DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &DashboardModel{ctx: ctx, dashboard: dashboard, spinner: s}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.stats = msg.stats
		m.loaded = true
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(msg, keys.refresh):
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
		}
	}
	return m, nil
}

func (m *DashboardModel) View() string {
	title := "DASHBOARD"
	if m.loading {
		title += "  " + m.spinner.View()
	}

	if !m.loaded {
		var b strings.Builder
		if m.errMsg == "" {
			b.WriteString(app.MsgLoading)
		}
		renderStatus(&b, "", m.errMsg)
		return renderPage(title, b.String(), "r: refresh │ esc: menu")
	}

	s := m.stats
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Total Leads", fmt.Sprint(s.TotalLeads)),
		statCard("Document Pending", fmt.Sprint(s.DocumentPending)),
		statCard("Document Completed", fmt.Sprint(s.DocumentCompleted)),
	)
	cards = lipgloss.JoinVertical(lipgloss.Left, cards, lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Bank Applications", fmt.Sprint(s.BankApplications)),
		statCard("Approved", fmt.Sprint(s.BankApproved)),
		statCard("Rejected", fmt.Sprint(s.BankRejected)),
	))

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Recent Leads"))
	b.WriteString("\n")
	if len(s.RecentLeads) == 0 {
		b.WriteString(app.MsgEmptyList + "\n")
	}
	for _, lead := range s.RecentLeads {
		b.WriteString(fmt.Sprintf("#%-4d %-22s %-15s %s\n",
			lead.SerialNo, fitText(lead.FullName, 22), lead.LoanType, utils.FormatCurrency(lead.RequestedAmount)))
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Recent Documents"))
	b.WriteString("\n")
	if len(s.RecentDocuments) == 0 {
		b.WriteString(app.MsgEmptyList + "\n")
	}
	for _, record := range s.RecentDocuments {
		completed := "-"
		if record.CompletedAt != nil {
			completed = utils.FormatDate(*record.CompletedAt)
		}
		b.WriteString(fmt.Sprintf("#%-4d %-22s %d/%d docs  %s\n",
			record.SerialNo, fitText(record.FullName, 22), record.Documents.UploadedCount(), len(models.DocumentSlots), completed))
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Recent Bank Updates"))
	b.WriteString("\n")
	if len(s.RecentBankUpdates) == 0 {
		b.WriteString(app.MsgEmptyList + "\n")
	}
	for _, a := range s.RecentBankUpdates {
		b.WriteString(fmt.Sprintf("%-18s %-22s %s\n", a.AppID, fitText(a.CustomerName, 22), statusText(a)))
	}

	renderStatus(&b, "", m.errMsg)
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "r: refresh │ esc: menu")
}

func (m *DashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	dashboard := m.dashboard

	return func() tea.Msg {
		stats, err := dashboard.Stats(ctx)
		return dashboardMsg{stats: stats, err: err}
	}
}

func statCard(label, value string) string {
	return statCardStyle.Render(helpStyle.Render(label) + "\n" + titleStyle.Render(value))
}

func statusText(a models.BankApplication) string {
	if a.Status == nil {
		return "Pending"
	}
	return string(*a.Status)
}
