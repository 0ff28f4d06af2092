// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoanType is the kind of loan a lead is asking for.
type LoanType string

const (
	PersonalLoan  LoanType = "Personal Loan"
	HomeLoan      LoanType = "Home Loan"
	BusinessLoan  LoanType = "Business Loan"
	CarLoan       LoanType = "Car Loan"
	EducationLoan LoanType = "Education Loan"
	GoldLoan      LoanType = "Gold Loan"
)

// LoanTypes lists every supported loan type in display order.
var LoanTypes = []LoanType{
	PersonalLoan,
	HomeLoan,
	BusinessLoan,
	CarLoan,
	EducationLoan,
	GoldLoan,
}

// IsValid reports whether t is one of [LoanTypes].
func (t LoanType) IsValid() bool {
	for _, lt := range LoanTypes {
		if lt == t {
			return true
		}
	}
	return false
}

// Lead is a prospective loan customer.
//
// SerialNo is assigned by the lead registry on creation and never changes;
// document records and bank applications derived from the lead reuse it.
type Lead struct {
	SerialNo        int64     `json:"serialNo"`
	FullName        string    `json:"fullName"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	PanCard         string    `json:"panCard"`
	LoanType        LoanType  `json:"loanType"`
	RequestedAmount float64   `json:"requestedAmount"`
	MonthlyIncome   float64   `json:"monthlyIncome"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// LeadInput holds the fields supplied by staff when a lead is registered.
// SerialNo and CreatedAt are generated by the registry.
type LeadInput struct {
	FullName        string
	Phone           string
	Email           string
	PanCard         string
	LoanType        LoanType
	RequestedAmount float64
	MonthlyIncome   float64
	Notes           *string
}

// LeadPatch is a shallow partial update of a [Lead]. Nil fields are left
// untouched. SerialNo is not patchable.
type LeadPatch struct {
	FullName        *string
	Phone           *string
	Email           *string
	PanCard         *string
	LoanType        *LoanType
	RequestedAmount *float64
	MonthlyIncome   *float64
	Notes           *string
	CreatedAt       *time.Time
}

// Apply returns a copy of lead with every non-nil patch field applied.
func (p LeadPatch) Apply(lead Lead) Lead {
	if p.FullName != nil {
		lead.FullName = *p.FullName
	}
	if p.Phone != nil {
		lead.Phone = *p.Phone
	}
	if p.Email != nil {
		lead.Email = *p.Email
	}
	if p.PanCard != nil {
		lead.PanCard = *p.PanCard
	}
	if p.LoanType != nil {
		lead.LoanType = *p.LoanType
	}
	if p.RequestedAmount != nil {
		lead.RequestedAmount = *p.RequestedAmount
	}
	if p.MonthlyIncome != nil {
		lead.MonthlyIncome = *p.MonthlyIncome
	}
	if p.Notes != nil {
		notes := *p.Notes
		lead.Notes = &notes
	}
	if p.CreatedAt != nil {
		lead.CreatedAt = *p.CreatedAt
	}
	return lead
}

// NewDocumentRecord builds the document-pending copy of a lead. The copy has
// no documents and no completion time yet.
func (l Lead) NewDocumentRecord() DocumentRecord {
	return DocumentRecord{
		SerialNo:        l.SerialNo,
		FullName:        l.FullName,
		Phone:           l.Phone,
		Email:           l.Email,
		PanCard:         l.PanCard,
		LoanType:        l.LoanType,
		RequestedAmount: l.RequestedAmount,
		MonthlyIncome:   l.MonthlyIncome,
		Notes:           cloneString(l.Notes),
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
