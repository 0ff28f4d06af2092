// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/loan-tracker/internal/app"
	"github.com/MKhiriev/loan-tracker/internal/service"
	"github.com/MKhiriev/loan-tracker/internal/utils"
	"github.com/MKhiriev/loan-tracker/internal/validators"
	"github.com/MKhiriev/loan-tracker/models"
)

type StatusFormModel struct {
	ctx       context.Context
	statuses  service.StatusService
	validator validators.Validator

	application models.BankApplication
	statusIdx   int
	remarks     textinput.Model
	editRemarks bool
	submitting  bool
	errMsg      string
}

func NewStatusFormModel(ctx context.Context, statuses service.StatusService, validator validators.Validator) *StatusFormModel {
	m := &StatusFormModel{ctx: ctx, statuses: statuses, validator: validator}
	m.reset(models.BankApplication{})
	return m
}

func (m *StatusFormModel) Init() tea.Cmd {
	return nil
}

func (m *StatusFormModel) reset(application models.BankApplication) {
	remarks := textinput.New()
	remarks.Placeholder = "remarks (optional)"
	remarks.Width = 50
	remarks.CharLimit = 256

	m.application = application
	m.statusIdx = 0
	m.remarks = remarks
	m.editRemarks = false
	m.submitting = false
	m.errMsg = ""
}

func (m *StatusFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openStatusFormMsg:
		m.reset(msg.app)
		return m, nil
	case savedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(pageStatusPending, noticeMsg{text: msg.notice})
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageStatusPending, nil)
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
			m.editRemarks = !m.editRemarks
			if m.editRemarks {
				return m, m.remarks.Focus()
			}
			m.remarks.Blur()
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		case !m.editRemarks && key.Matches(msg, keys.up):
			if m.statusIdx > 0 {
				m.statusIdx--
			}
			return m, nil
		case !m.editRemarks && key.Matches(msg, keys.down):
			if m.statusIdx < len(models.BankStatuses)-1 {
				m.statusIdx++
			}
			return m, nil
		}
	}

	if !m.editRemarks {
		return m, nil
	}
	var cmd tea.Cmd
	m.remarks, cmd = m.remarks.Update(msg)
	return m, cmd
}

func (m *StatusFormModel) View() string {
	a := m.application

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Customer : %s (#%d)\n", a.CustomerName, a.SerialNo))
	b.WriteString(fmt.Sprintf("Bank     : %s\n", a.BankName))
	b.WriteString(fmt.Sprintf("Loan     : %s · %s\n", a.LoanType, utils.FormatCurrency(a.Amount)))
	b.WriteString(fmt.Sprintf("Applied  : %s\n\n", utils.FormatDate(a.AppliedAt)))

	b.WriteString("Status\n")
	for i, status := range models.BankStatuses {
		cursor := "  "
		if i == m.statusIdx {
			cursor = "> "
			if m.editRemarks {
				cursor = "* "
			}
		}
		b.WriteString(cursor + string(status) + "\n")
	}

	b.WriteString("\nRemarks  [")
	b.WriteString(m.remarks.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage("UPDATE STATUS · "+a.AppID, strings.TrimRight(b.String(), "\n"),
		"↑/↓: status │ tab: remarks │ enter: save │ esc: cancel")
}

func (m *StatusFormModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	status := models.BankStatuses[m.statusIdx]
	if err := m.validator.Validate(m.ctx, status); err != nil {
		m.errMsg = err.Error()
		return nil
	}

	m.errMsg = ""
	m.submitting = true
	ctx, statuses, appID, remarks := m.ctx, m.statuses, m.application.AppID, strings.TrimSpace(m.remarks.Value())

	return func() tea.Msg {
		_, err := statuses.UpdateBankStatus(ctx, appID, status, remarks)
		return savedMsg{notice: fmt.Sprintf("%s: %s is %s", app.MsgStatusUpdated, appID, status), err: err}
	}
}
