// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/loan-tracker/internal/app"
	"github.com/MKhiriev/loan-tracker/internal/service"
	"github.com/MKhiriev/loan-tracker/internal/validators"
	"github.com/MKhiriev/loan-tracker/models"
)

const (
	leadFieldName = iota
	leadFieldPhone
	leadFieldEmail
	leadFieldPan
	leadFieldAmount
	leadFieldIncome
	leadFieldNotes
	leadFieldLoanType
	leadFieldCount
)

var leadFieldLabels = [leadFieldCount]string{
	"Full Name", "Phone", "Email", "PAN Card", "Amount (₹)", "Income (₹)", "Notes", "Loan Type",
}

// LeadFormModel adds a new lead or edits an existing one. The loan type is
// picked with ←/→ when its row is focused.
type LeadFormModel struct {
	ctx       context.Context
	leads     service.LeadService
	validator validators.Validator

	inputs      []textinput.Model
	loanTypeIdx int
	focus       int
	editing     *models.Lead
	submitting  bool
	errMsg      string
}

func NewLeadFormModel(ctx context.Context, leads service.LeadService, validator validators.Validator) *LeadFormModel {
	m := &LeadFormModel{ctx: ctx, leads: leads, validator: validator}
	m.reset(nil)
	return m
}

func (m *LeadFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LeadFormModel) reset(lead *models.Lead) {
	m.inputs = make([]textinput.Model, leadFieldLoanType)
	for i := range m.inputs {
		m.inputs[i] = textinput.New()
		m.inputs[i].Width = 40
		m.inputs[i].CharLimit = 128
	}
	m.inputs[leadFieldPhone].CharLimit = 15
	m.inputs[leadFieldPan].CharLimit = 10
	m.inputs[leadFieldEmail].Placeholder = "name@example.com"
	m.inputs[leadFieldAmount].Placeholder = "500000"
	m.inputs[leadFieldIncome].Placeholder = "50000"
	m.inputs[leadFieldName].Focus()

	m.focus = leadFieldName
	m.loanTypeIdx = 0
	m.editing = lead
	m.submitting = false
	m.errMsg = ""
	if lead == nil {
		return
	}

	m.inputs[leadFieldName].SetValue(lead.FullName)
	m.inputs[leadFieldPhone].SetValue(lead.Phone)
	m.inputs[leadFieldEmail].SetValue(lead.Email)
	m.inputs[leadFieldPan].SetValue(lead.PanCard)
	m.inputs[leadFieldAmount].SetValue(strconv.FormatFloat(lead.RequestedAmount, 'f', -1, 64))
	m.inputs[leadFieldIncome].SetValue(strconv.FormatFloat(lead.MonthlyIncome, 'f', -1, 64))
	m.inputs[leadFieldNotes].SetValue(valueOrEmpty(lead.Notes))
	for i, lt := range models.LoanTypes {
		if lt == lead.LoanType {
			m.loanTypeIdx = i
		}
	}
}

func (m *LeadFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openLeadFormMsg:
		m.reset(msg.lead)
		return m, nil
	case savedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(pageLeads, noticeMsg{text: msg.notice})
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageLeads, nil)
		case key.Matches(msg, keys.tab), key.Matches(msg, formKeys.down):
			m.setFocus((m.focus + 1) % leadFieldCount)
			return m, nil
		case key.Matches(msg, keys.backtab), key.Matches(msg, formKeys.up):
			m.setFocus((m.focus - 1 + leadFieldCount) % leadFieldCount)
			return m, nil
		case m.focus == leadFieldLoanType && key.Matches(msg, keys.left):
			m.loanTypeIdx = (m.loanTypeIdx - 1 + len(models.LoanTypes)) % len(models.LoanTypes)
			return m, nil
		case m.focus == leadFieldLoanType && key.Matches(msg, keys.right):
			m.loanTypeIdx = (m.loanTypeIdx + 1) % len(models.LoanTypes)
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	if m.focus == leadFieldLoanType {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LeadFormModel) View() string {
	title := "NEW LEAD"
	if m.editing != nil {
		title = "EDIT LEAD #" + strconv.FormatInt(m.editing.SerialNo, 10)
	}

	var b strings.Builder
	for i := range leadFieldCount {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(padRight(leadFieldLabels[i], 11))
		b.WriteString("│ ")
		if i == leadFieldLoanType {
			b.WriteString("‹ " + string(models.LoanTypes[m.loanTypeIdx]) + " ›")
		} else {
			b.WriteString("[" + m.inputs[i].View() + "]")
		}
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "tab/↓: next field │ ←/→: loan type │ enter: save │ esc: cancel")
}

func (m *LeadFormModel) setFocus(next int) {
	if m.focus < leadFieldLoanType {
		m.inputs[m.focus].Blur()
	}
	m.focus = next
	if m.focus < leadFieldLoanType {
		m.inputs[m.focus].Focus()
	}
}

// input collects the form values. Unparsable amounts become 0 and are
// rejected by the validator.
func (m *LeadFormModel) input() models.LeadInput {
	in := models.LeadInput{
		FullName:        strings.TrimSpace(m.inputs[leadFieldName].Value()),
		Phone:           strings.TrimSpace(m.inputs[leadFieldPhone].Value()),
		Email:           strings.TrimSpace(m.inputs[leadFieldEmail].Value()),
		PanCard:         strings.ToUpper(strings.TrimSpace(m.inputs[leadFieldPan].Value())),
		LoanType:        models.LoanTypes[m.loanTypeIdx],
		RequestedAmount: parseAmount(m.inputs[leadFieldAmount].Value()),
		MonthlyIncome:   parseAmount(m.inputs[leadFieldIncome].Value()),
	}
	if notes := strings.TrimSpace(m.inputs[leadFieldNotes].Value()); notes != "" {
		in.Notes = &notes
	}
	return in
}

func (m *LeadFormModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	in := m.input()
	if err := m.validator.Validate(m.ctx, in); err != nil {
		m.errMsg = err.Error()
		return nil
	}

	m.errMsg = ""
	m.submitting = true
	ctx, leads, editing := m.ctx, m.leads, m.editing

	return func() tea.Msg {
		var err error
		if editing == nil {
			_, err = leads.AddLead(ctx, in)
		} else {
			_, err = leads.UpdateLead(ctx, editing.SerialNo, patchFrom(in))
		}
		return savedMsg{notice: app.MsgLeadSaved, err: err}
	}
}

// patchFrom turns a full form into a patch. Cleared notes are stored as an
// empty string.
func patchFrom(in models.LeadInput) models.LeadPatch {
	notes := valueOrEmpty(in.Notes)
	return models.LeadPatch{
		FullName:        &in.FullName,
		Phone:           &in.Phone,
		Email:           &in.Email,
		PanCard:         &in.PanCard,
		LoanType:        &in.LoanType,
		RequestedAmount: &in.RequestedAmount,
		MonthlyIncome:   &in.MonthlyIncome,
		Notes:           &notes,
	}
}

func parseAmount(v string) float64 {
	v = strings.ReplaceAll(strings.TrimSpace(v), ",", "")
	amount, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return amount
}

func valueOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func padRight(v string, width int) string {
	if n := len([]rune(v)); n < width {
		return v + strings.Repeat(" ", width-n)
	}
	return v
}
