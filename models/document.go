// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DocumentSlot is one of the fixed document checklist categories.
type DocumentSlot string

const (
	SlotIDProof        DocumentSlot = "idProof"
	SlotAddressProof   DocumentSlot = "addressProof"
	SlotSalarySlips    DocumentSlot = "salarySlips"
	SlotBankStatements DocumentSlot = "bankStatements"
	SlotPhoto          DocumentSlot = "photo"
	SlotSignature      DocumentSlot = "signature"
	SlotOtherDocuments DocumentSlot = "otherDocuments"
)

// DocumentSlots lists the seven checklist slots in display order.
var DocumentSlots = []DocumentSlot{
	SlotIDProof,
	SlotAddressProof,
	SlotSalarySlips,
	SlotBankStatements,
	SlotPhoto,
	SlotSignature,
	SlotOtherDocuments,
}

var documentSlotLabels = map[DocumentSlot]string{
	SlotIDProof:        "ID Proof (Aadhaar/Passport)",
	SlotAddressProof:   "Address Proof",
	SlotSalarySlips:    "Salary Slips (3 months)",
	SlotBankStatements: "Bank Statements (6 months)",
	SlotPhoto:          "Passport Photo",
	SlotSignature:      "Signature",
	SlotOtherDocuments: "Other Documents",
}

// IsValid reports whether s is one of [DocumentSlots].
func (s DocumentSlot) IsValid() bool {
	_, ok := documentSlotLabels[s]
	return ok
}

// Label returns the human readable name of the slot.
func (s DocumentSlot) Label() string {
	if label, ok := documentSlotLabels[s]; ok {
		return label
	}
	return string(s)
}

// DocumentStatus is the checklist state of one slot.
//
// FileName is free text; the store does not enforce any correlation between
// Uploaded and FileName.
type DocumentStatus struct {
	Uploaded bool    `json:"uploaded"`
	FileName *string `json:"fileName,omitempty"`
}

// Documents maps checklist slots to their state.
type Documents map[DocumentSlot]DocumentStatus

// Clone returns a deep copy of d. A nil map stays nil.
func (d Documents) Clone() Documents {
	if d == nil {
		return nil
	}
	out := make(Documents, len(d))
	for slot, status := range d {
		out[slot] = DocumentStatus{Uploaded: status.Uploaded, FileName: cloneString(status.FileName)}
	}
	return out
}

// UploadedCount returns the number of slots marked as uploaded.
func (d Documents) UploadedCount() int {
	n := 0
	for _, status := range d {
		if status.Uploaded {
			n++
		}
	}
	return n
}

// DocumentRecord is the document-collection view of a lead. It lives in
// exactly one of the document-pending, document-history and bank-pending
// queues; a record that reached document history is additionally copied into
// bank-pending once.
//
// Documents is nil until the checklist is saved for the first time.
type DocumentRecord struct {
	SerialNo        int64      `json:"serialNo"`
	FullName        string     `json:"fullName"`
	Phone           string     `json:"phone"`
	Email           string     `json:"email"`
	PanCard         string     `json:"panCard"`
	LoanType        LoanType   `json:"loanType"`
	RequestedAmount float64    `json:"requestedAmount"`
	MonthlyIncome   float64    `json:"monthlyIncome"`
	Notes           *string    `json:"notes,omitempty"`
	Documents       Documents  `json:"documents,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
}
