// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/loan-tracker/internal/service"
	"github.com/MKhiriev/loan-tracker/internal/utils"
	"github.com/MKhiriev/loan-tracker/models"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func newLeadsPage(ctx context.Context, leads service.LeadService) *listPage[models.Lead] {
	columns := []table.Column{
		{Title: "S.No", Width: 5},
		{Title: "Name", Width: 20},
		{Title: "Phone", Width: 12},
		{Title: "Loan Type", Width: 14},
		{Title: "Amount", Width: 14},
		{Title: "Created", Width: 12},
	}
	row := func(l models.Lead) table.Row {
		return table.Row{fmt.Sprint(l.SerialNo), l.FullName, l.Phone, string(l.LoanType),
			utils.FormatCurrency(l.RequestedAmount), utils.FormatDate(l.CreatedAt)}
	}

	return newListPage(ctx, pageLeads, "LEAD MANAGEMENT", columns, leads.GetLeads, row,
		listAction[models.Lead]{
			binding: keys.newItem,
			help:    "n: new lead",
			run: func(models.Lead) tea.Cmd {
				return navigate(pageLeadForm, openLeadFormMsg{})
			},
		},
		listAction[models.Lead]{
			binding:   keys.edit,
			help:      "e: edit",
			needsItem: true,
			run: func(l models.Lead) tea.Cmd {
				return navigate(pageLeadForm, openLeadFormMsg{lead: &l})
			},
		},
	)
}

func documentColumns(last string) []table.Column {
	return []table.Column{
		{Title: "S.No", Width: 5},
		{Title: "Name", Width: 20},
		{Title: "Loan Type", Width: 14},
		{Title: "Amount", Width: 14},
		{Title: "Docs", Width: 6},
		{Title: last, Width: 12},
	}
}

func documentRow(r models.DocumentRecord) table.Row {
	completed := "-"
	if r.CompletedAt != nil {
		completed = utils.FormatDate(*r.CompletedAt)
	}
	return table.Row{fmt.Sprint(r.SerialNo), r.FullName, string(r.LoanType), utils.FormatCurrency(r.RequestedAmount),
		fmt.Sprintf("%d/%d", r.Documents.UploadedCount(), len(models.DocumentSlots)), completed}
}

func newDocumentPendingPage(ctx context.Context, documents service.DocumentService) *listPage[models.DocumentRecord] {
	return newListPage(ctx, pageDocumentPending, "DOCUMENT PENDING", documentColumns("Completed"),
		documents.GetDocumentPending, documentRow,
		listAction[models.DocumentRecord]{
			binding:   keys.enter,
			help:      "enter: add documents",
			needsItem: true,
			run: func(r models.DocumentRecord) tea.Cmd {
				return navigate(pageChecklist, openChecklistMsg{record: r})
			},
		},
	)
}

func newDocumentHistoryPage(ctx context.Context, documents service.DocumentService) *listPage[models.DocumentRecord] {
	return newListPage(ctx, pageDocumentHistory, "DOCUMENT HISTORY", documentColumns("Completed"),
		documents.GetDocumentHistory, documentRow,
		listAction[models.DocumentRecord]{
			binding:   keys.edit,
			help:      "e: edit documents",
			needsItem: true,
			run: func(r models.DocumentRecord) tea.Cmd {
				return navigate(pageChecklist, openChecklistMsg{record: r, history: true})
			},
		},
	)
}

func newBankPendingPage(ctx context.Context, banks service.BankService) *listPage[models.DocumentRecord] {
	return newListPage(ctx, pageBankPending, "BANK PENDING", documentColumns("Completed"),
		banks.GetBankPending, documentRow,
		listAction[models.DocumentRecord]{
			binding:   keys.enter,
			help:      "enter: apply to banks",
			needsItem: true,
			run: func(r models.DocumentRecord) tea.Cmd {
				return navigate(pageBankSelect, openBankSelectMsg{record: r})
			},
		},
	)
}

func applicationColumns(last string) []table.Column {
	return []table.Column{
		{Title: "App ID", Width: 18},
		{Title: "S.No", Width: 5},
		{Title: "Customer", Width: 20},
		{Title: "Bank", Width: 9},
		{Title: "Amount", Width: 14},
		{Title: "Applied", Width: 12},
		{Title: last, Width: 18},
	}
}

func applicationRow(a models.BankApplication) table.Row {
	return table.Row{a.AppID, fmt.Sprint(a.SerialNo), a.CustomerName, string(a.BankName),
		utils.FormatCurrency(a.Amount), utils.FormatDate(a.AppliedAt), statusText(a)}
}

func newBankHistoryPage(ctx context.Context, banks service.BankService) *listPage[models.BankApplication] {
	return newListPage(ctx, pageBankHistory, "BANK HISTORY", applicationColumns("Status"),
		banks.GetBankHistory, applicationRow,
		listAction[models.BankApplication]{
			binding:   keys.copy,
			help:      "c: copy app ID",
			needsItem: true,
			run: func(a models.BankApplication) tea.Cmd {
				return func() tea.Msg {
					return copiedMsg{text: a.AppID, err: writeClipboard(a.AppID)}
				}
			},
		},
	)
}

func newStatusPendingPage(ctx context.Context, statuses service.StatusService) *listPage[models.BankApplication] {
	return newListPage(ctx, pageStatusPending, "STATUS PENDING", applicationColumns("Status"),
		statuses.GetStatusPending, applicationRow,
		listAction[models.BankApplication]{
			binding:   keys.enter,
			help:      "enter: update status",
			needsItem: true,
			run: func(a models.BankApplication) tea.Cmd {
				return navigate(pageStatusForm, openStatusFormMsg{app: a})
			},
		},
	)
}

func newStatusHistoryPage(ctx context.Context, statuses service.StatusService) *listPage[models.BankApplication] {
	columns := []table.Column{
		{Title: "App ID", Width: 18},
		{Title: "Customer", Width: 20},
		{Title: "Bank", Width: 9},
		{Title: "Status", Width: 18},
		{Title: "Remarks", Width: 24},
		{Title: "Updated", Width: 12},
	}
	row := func(a models.BankApplication) table.Row {
		updated := "-"
		if a.UpdatedAt != nil {
			updated = utils.FormatDate(*a.UpdatedAt)
		}
		return table.Row{a.AppID, a.CustomerName, string(a.BankName), statusText(a), valueOrDash(a.Remarks), updated}
	}

	return newListPage(ctx, pageStatusHistory, "STATUS HISTORY", columns, statuses.GetStatusHistory, row)
}
