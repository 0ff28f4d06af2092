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

// ChecklistModel edits the seven document slots of one record. For a pending
// record saving completes it; for a history record it only replaces the
// checklist.
type ChecklistModel struct {
	ctx       context.Context
	documents service.DocumentService
	validator validators.Validator

	record     models.DocumentRecord
	history    bool
	uploaded   []bool
	fileNames  []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewChecklistModel(ctx context.Context, documents service.DocumentService, validator validators.Validator) *ChecklistModel {
	m := &ChecklistModel{ctx: ctx, documents: documents, validator: validator}
	m.reset(models.DocumentRecord{}, false)
	return m
}

func (m *ChecklistModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ChecklistModel) reset(record models.DocumentRecord, history bool) {
	m.record = record
	m.history = history
	m.focus = 0
	m.submitting = false
	m.errMsg = ""
	m.uploaded = make([]bool, len(models.DocumentSlots))
	m.fileNames = make([]textinput.Model, len(models.DocumentSlots))

	for i, slot := range models.DocumentSlots {
		input := textinput.New()
		input.Placeholder = "file name"
		input.Width = 30
		input.CharLimit = 128

		if status, ok := record.Documents[slot]; ok {
			m.uploaded[i] = status.Uploaded
			input.SetValue(valueOrEmpty(status.FileName))
		}
		m.fileNames[i] = input
	}
	m.fileNames[0].Focus()
}

func (m *ChecklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openChecklistMsg:
		m.reset(msg.record, msg.history)
		return m, nil
	case savedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(m.backPage(), noticeMsg{text: msg.notice})
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(m.backPage(), nil)
		case key.Matches(msg, formKeys.down):
			m.setFocus((m.focus + 1) % len(m.fileNames))
			return m, nil
		case key.Matches(msg, formKeys.up):
			m.setFocus((m.focus - 1 + len(m.fileNames)) % len(m.fileNames))
			return m, nil
		case key.Matches(msg, keys.tab):
			m.uploaded[m.focus] = !m.uploaded[m.focus]
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	before := m.fileNames[m.focus].Value()
	var cmd tea.Cmd
	m.fileNames[m.focus], cmd = m.fileNames[m.focus].Update(msg)
	if before == "" && m.fileNames[m.focus].Value() != "" {
		m.uploaded[m.focus] = true
	}
	return m, cmd
}

func (m *ChecklistModel) View() string {
	title := "ADD DOCUMENTS"
	if m.history {
		title = "EDIT DOCUMENTS"
	}
	title += fmt.Sprintf(" · #%d %s", m.record.SerialNo, m.record.FullName)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s · %s\n\n", m.record.LoanType, utils.FormatCurrency(m.record.RequestedAmount)))
	for i, slot := range models.DocumentSlots {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		check := "[ ]"
		if m.uploaded[i] {
			check = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s%s %s │ %s\n", cursor, check, padRight(slot.Label(), 28), m.fileNames[i].View()))
	}

	uploaded := 0
	for _, u := range m.uploaded {
		if u {
			uploaded++
		}
	}
	b.WriteString(fmt.Sprintf("\n%d of %d uploaded\n", uploaded, len(models.DocumentSlots)))

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "↑/↓: slot │ tab: toggle uploaded │ enter: save │ esc: cancel")
}

func (m *ChecklistModel) setFocus(next int) {
	m.fileNames[m.focus].Blur()
	m.focus = next
	m.fileNames[m.focus].Focus()
}

func (m *ChecklistModel) backPage() string {
	if m.history {
		return pageDocumentHistory
	}
	return pageDocumentPending
}

func (m *ChecklistModel) checklist() models.Documents {
	docs := make(models.Documents, len(models.DocumentSlots))
	for i, slot := range models.DocumentSlots {
		status := models.DocumentStatus{Uploaded: m.uploaded[i]}
		if name := strings.TrimSpace(m.fileNames[i].Value()); name != "" {
			status.FileName = &name
		}
		docs[slot] = status
	}
	return docs
}

func (m *ChecklistModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	docs := m.checklist()
	if err := m.validator.Validate(m.ctx, docs); err != nil {
		m.errMsg = err.Error()
		return nil
	}

	m.errMsg = ""
	m.submitting = true
	ctx, documents, serialNo, history := m.ctx, m.documents, m.record.SerialNo, m.history

	return func() tea.Msg {
		if history {
			_, err := documents.UpdateDocumentHistory(ctx, serialNo, docs)
			return savedMsg{notice: app.MsgDocumentsUpdated, err: err}
		}
		_, err := documents.SaveDocuments(ctx, serialNo, docs)
		return savedMsg{notice: app.MsgDocumentsSaved, err: err}
	}
}
