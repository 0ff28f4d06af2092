// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// BankName identifies a partner bank.
type BankName string

const (
	BankHDFC     BankName = "HDFC"
	BankICICI    BankName = "ICICI"
	BankSBI      BankName = "SBI"
	BankAxis     BankName = "Axis"
	BankKotak    BankName = "Kotak"
	BankIndusInd BankName = "IndusInd"
	BankBajaj    BankName = "Bajaj"
	BankOthers   BankName = "Others"
)

// BankNames lists the partner banks in display order.
var BankNames = []BankName{
	BankHDFC,
	BankICICI,
	BankSBI,
	BankAxis,
	BankKotak,
	BankIndusInd,
	BankBajaj,
	BankOthers,
}

// IsValid reports whether b is one of [BankNames].
func (b BankName) IsValid() bool {
	for _, name := range BankNames {
		if name == b {
			return true
		}
	}
	return false
}

// BankStatus is the decision recorded for a bank application.
// An application without a status is pending.
type BankStatus string

const (
	StatusApproved          BankStatus = "Approved"
	StatusRejected          BankStatus = "Rejected"
	StatusDocumentsRequired BankStatus = "Documents Required"
	StatusQuery             BankStatus = "Query"
	StatusUnderReview       BankStatus = "Under Review"
	StatusSanctioned        BankStatus = "Sanctioned"
)

// BankStatuses lists the statuses staff can assign, in display order.
var BankStatuses = []BankStatus{
	StatusApproved,
	StatusRejected,
	StatusDocumentsRequired,
	StatusQuery,
	StatusUnderReview,
	StatusSanctioned,
}

// IsValid reports whether s is one of [BankStatuses].
func (s BankStatus) IsValid() bool {
	for _, status := range BankStatuses {
		if status == s {
			return true
		}
	}
	return false
}

// IsApproved reports whether s counts as a positive decision on the dashboard.
func (s BankStatus) IsApproved() bool {
	return s == StatusApproved || s == StatusSanctioned
}

// BankAppID formats the application identifier for the n-th application
// submitted to bank, e.g. BANK-HDFC-00001.
func BankAppID(bank BankName, n int64) string {
	return fmt.Sprintf("BANK-%s-%05d", bank, n)
}

// BankApplication is one loan submission to one bank.
//
// Applications are appended to bank history permanently and tracked in exactly
// one of status-pending and status-history.
type BankApplication struct {
	AppID        string      `json:"appId"`
	SerialNo     int64       `json:"serialNo"`
	CustomerName string      `json:"customerName"`
	Phone        string      `json:"phone"`
	BankName     BankName    `json:"bankName"`
	LoanType     LoanType    `json:"loanType"`
	Amount       float64     `json:"amount"`
	Status       *BankStatus `json:"status,omitempty"`
	Remarks      *string     `json:"remarks,omitempty"`
	AppliedAt    time.Time   `json:"appliedAt"`
	UpdatedAt    *time.Time  `json:"updatedAt,omitempty"`
}

// IsPending reports whether no status has been recorded yet.
func (a BankApplication) IsPending() bool {
	return a.Status == nil
}
