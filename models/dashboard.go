// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DashboardStats is a read-only summary computed over the tracker queues.
type DashboardStats struct {
	TotalLeads        int
	DocumentPending   int
	DocumentCompleted int
	BankApplications  int
	BankApproved      int
	BankRejected      int

	// RecentLeads holds up to five leads, most recently created first.
	RecentLeads []Lead
	// RecentDocuments holds up to five document-history entries, newest first.
	RecentDocuments []DocumentRecord
	// RecentBankUpdates holds up to five status-history entries, newest first.
	RecentBankUpdates []BankApplication
}
