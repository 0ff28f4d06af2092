// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/loan-tracker/internal/app"
	"github.com/MKhiriev/loan-tracker/internal/logger"
	"github.com/MKhiriev/loan-tracker/internal/service"
)

// LoginModel is the Bubble Tea model for the login screen. It renders the
// user id and password inputs and dispatches an async login command on
// submit. On success a loginResult is produced and handled by [RootModel] to
// finish the flow.
type LoginModel struct {
	ctx      context.Context
	sessions service.SessionService
	logger   *logger.Logger

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel creates a [LoginModel]. The user id field receives focus
// immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, sessions service.SessionService, log *logger.Logger) *LoginModel {
	idInput := textinput.New()
	idInput.Placeholder = "user id"
	idInput.CharLimit = 32
	idInput.Width = 40
	idInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:      ctx,
		sessions: sessions,
		logger:   log,
		inputs:   []textinput.Model{idInput, passwordInput},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - loginResult: clears submitting state; on error, populates errMsg.
//   - tab, shift+tab: move focus between inputs.
//   - enter: checks both inputs are filled and dispatches the login command.
//
// All other key events are forwarded to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResult); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			m.inputs[1].SetValue("")
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			id := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if id == "" || password == "" {
				m.errMsg = app.MsgCredentialsRequired
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(id, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("User ID   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage("LOAN TRACKER · SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: sign in")
}

func (m *LoginModel) cmdLogin(id, password string) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	log := m.logger

	return func() tea.Msg {
		user, err := sessions.ValidateCredentials(ctx, id, password)
		if err != nil {
			log.Info().Str("func", "LoginModel.cmdLogin").Str("user_id", id).Msg("login rejected")
			return loginResult{err: err}
		}

		session, err := sessions.Login(ctx, user)
		if err != nil {
			log.Err(err).Str("func", "LoginModel.cmdLogin").Msg("failed to persist session")
		}
		return loginResult{session: session, err: err}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
