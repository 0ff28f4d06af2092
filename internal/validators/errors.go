// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFullName       = errors.New("full name is required")
	ErrInvalidPhone        = errors.New("phone number must have at least 10 characters")
	ErrInvalidEmail        = errors.New("invalid e-mail address")
	ErrInvalidPanCard      = errors.New("PAN card must have at least 10 characters")
	ErrInvalidLoanType     = errors.New("invalid loan type")
	ErrInvalidAmount       = errors.New("requested amount must be at least 1")
	ErrInvalidIncome       = errors.New("monthly income must be at least 1")
	ErrUnknownDocumentSlot = errors.New("unknown document slot")
	ErrEmptyBankSelection  = errors.New("select at least one bank")
	ErrUnknownBank         = errors.New("unknown bank")
	ErrDuplicateBank       = errors.New("bank selected more than once")
	ErrInvalidBankStatus   = errors.New("invalid bank status")
)
