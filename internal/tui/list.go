// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/loan-tracker/internal/app"
)

const listHeight = 12

// listAction binds a key to an operation on the selected row. Actions with
// needsItem are ignored on an empty list.
type listAction[T any] struct {
	binding   key.Binding
	help      string
	needsItem bool
	run       func(item T) tea.Cmd
}

// listPage is a table of records reloaded from the services on every visit.
type listPage[T any] struct {
	ctx     context.Context
	name    string
	title   string
	load    func(ctx context.Context) ([]T, error)
	row     func(item T) table.Row
	actions []listAction[T]

	table   table.Model
	items   []T
	loading bool
	notice  string
	errMsg  string
}

func newListPage[T any](ctx context.Context, name, title string, columns []table.Column,
	load func(ctx context.Context) ([]T, error), row func(item T) table.Row, actions ...listAction[T]) *listPage[T] {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(listHeight),
	)
	t.SetStyles(tableStyles())

	return &listPage[T]{
		ctx:     ctx,
		name:    name,
		title:   title,
		load:    load,
		row:     row,
		actions: actions,
		table:   t,
	}
}

func (p *listPage[T]) Init() tea.Cmd {
	p.loading = true
	p.errMsg = ""
	return p.cmdLoad()
}

func (p *listPage[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsLoadedMsg[T]:
		if msg.page != p.name {
			return p, nil
		}
		p.loading = false
		if msg.err != nil {
			p.errMsg = humanizeError(msg.err)
			return p, nil
		}
		p.setItems(msg.items)
		return p, nil
	case noticeMsg:
		p.notice = msg.text
		return p, nil
	case copiedMsg:
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return p, nil
		}
		p.notice = app.MsgCopied + ": " + msg.text
		return p, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) {
			p.notice = ""
			return p, navigate(pageMenu, nil)
		}
		for _, action := range p.actions {
			if !key.Matches(msg, action.binding) {
				continue
			}
			item, ok := p.selected()
			if action.needsItem && !ok {
				p.errMsg = app.MsgNothingSelected
				return p, nil
			}
			p.errMsg = ""
			return p, action.run(item)
		}
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

func (p *listPage[T]) View() string {
	var b strings.Builder
	switch {
	case p.loading && len(p.items) == 0:
		b.WriteString(app.MsgLoading)
	case len(p.items) == 0:
		b.WriteString(app.MsgEmptyList)
	default:
		b.WriteString(p.table.View())
	}
	b.WriteString("\n")
	renderStatus(&b, p.notice, p.errMsg)

	help := make([]string, 0, len(p.actions)+2)
	help = append(help, "↑/↓: navigate")
	for _, action := range p.actions {
		help = append(help, action.help)
	}
	help = append(help, "esc: menu")

	return renderPage(p.title, strings.TrimRight(b.String(), "\n"), strings.Join(help, " │ "))
}

func (p *listPage[T]) setItems(items []T) {
	p.items = items
	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, p.row(item))
	}
	p.table.SetRows(rows)
	if n := len(rows); n > 0 {
		p.table.SetCursor(min(max(p.table.Cursor(), 0), n-1))
	}
}

func (p *listPage[T]) selected() (T, bool) {
	idx := p.table.Cursor()
	if idx < 0 || idx >= len(p.items) {
		var zero T
		return zero, false
	}
	return p.items[idx], true
}

func (p *listPage[T]) cmdLoad() tea.Cmd {
	ctx, name, load := p.ctx, p.name, p.load
	return func() tea.Msg {
		items, err := load(ctx)
		return itemsLoadedMsg[T]{page: name, items: items, err: err}
	}
}
