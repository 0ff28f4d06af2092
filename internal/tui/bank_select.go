// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/loan-tracker/internal/app"
	"github.com/MKhiriev/loan-tracker/internal/service"
	"github.com/MKhiriev/loan-tracker/internal/utils"
	"github.com/MKhiriev/loan-tracker/internal/validators"
	"github.com/MKhiriev/loan-tracker/models"
)

// BankSelectModel picks the banks a completed record is submitted to.
// Applications are created in the order banks were ticked.
type BankSelectModel struct {
	ctx       context.Context
	banks     service.BankService
	validator validators.Validator

	record     models.DocumentRecord
	selected   []models.BankName
	idx        int
	submitting bool
	errMsg     string
}

func NewBankSelectModel(ctx context.Context, banks service.BankService, validator validators.Validator) *BankSelectModel {
	return &BankSelectModel{ctx: ctx, banks: banks, validator: validator}
}

func (m *BankSelectModel) Init() tea.Cmd {
	return nil
}

func (m *BankSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openBankSelectMsg:
		m.record = msg.record
		m.selected = nil
		m.idx = 0
		m.submitting = false
		m.errMsg = ""
		return m, nil
	case savedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(pageBankPending, noticeMsg{text: msg.notice})
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageBankPending, nil)
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(models.BankNames)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.toggle):
			m.toggle(models.BankNames[m.idx])
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}
	return m, nil
}

func (m *BankSelectModel) View() string {
	title := fmt.Sprintf("APPLY TO BANKS · #%d %s", m.record.SerialNo, m.record.FullName)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s · %s\n\n", m.record.LoanType, utils.FormatCurrency(m.record.RequestedAmount)))
	for i, bank := range models.BankNames {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		check := "[ ]"
		if pos := slices.Index(m.selected, bank); pos != -1 {
			check = fmt.Sprintf("[%d]", pos+1)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, check, bank))
	}

	b.WriteString(fmt.Sprintf("\n%d bank(s) selected\n", len(m.selected)))
	if m.submitting {
		b.WriteString("\n[Submitting...]\n")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "↑/↓: navigate │ space: select │ enter: submit │ esc: cancel")
}

func (m *BankSelectModel) toggle(bank models.BankName) {
	if pos := slices.Index(m.selected, bank); pos != -1 {
		m.selected = slices.Delete(m.selected, pos, pos+1)
		return
	}
	m.selected = append(m.selected, bank)
}

func (m *BankSelectModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	if err := m.validator.Validate(m.ctx, m.selected); err != nil {
		m.errMsg = err.Error()
		return nil
	}

	m.errMsg = ""
	m.submitting = true
	ctx, banks, record, selected := m.ctx, m.banks, m.record, slices.Clone(m.selected)

	return func() tea.Msg {
		apps, err := banks.ApplyToBanks(ctx, record, selected)
		return savedMsg{notice: fmt.Sprintf("%s: %d", app.MsgAppliedToBanks, len(apps)), err: err}
	}
}
