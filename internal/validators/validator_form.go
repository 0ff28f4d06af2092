// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/asaskevich/govalidator"

	"github.com/MKhiriev/loan-tracker/models"
)

const (
	FieldFullName        = "full_name"
	FieldPhone           = "phone"
	FieldEmail           = "email"
	FieldPanCard         = "pan_card"
	FieldLoanType        = "loan_type"
	FieldRequestedAmount = "requested_amount"
	FieldMonthlyIncome   = "monthly_income"
)

const (
	minPhoneLength = 10
	minPanLength   = 10
	minAmount      = 1
)

// FormValidator checks the data entered on the staff forms before it is
// handed to the services. The services themselves accept any input.
type FormValidator struct {
}

func NewFormValidator() Validator {
	return &FormValidator{}
}

func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LeadInput:
		return v.validateLeadInput(ctx, value, fields...)
	case *models.LeadInput:
		return v.validateLeadInput(ctx, *value, fields...)

	case models.Lead:
		return v.validateLeadInput(ctx, leadInputOf(value), fields...)
	case *models.Lead:
		return v.validateLeadInput(ctx, leadInputOf(*value), fields...)

	case models.Documents:
		return v.validateChecklist(value)

	case []models.BankName:
		return v.validateBankSelection(value)

	case models.BankStatus:
		if !value.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidBankStatus, value)
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateLeadInput(_ context.Context, input models.LeadInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldPhone, FieldEmail, FieldPanCard, FieldLoanType, FieldRequestedAmount, FieldMonthlyIncome}
	}

	for _, f := range fields {
		switch f {
		case FieldFullName:
			if strings.TrimSpace(input.FullName) == "" {
				return ErrEmptyFullName
			}
		case FieldPhone:
			if !govalidator.MinStringLength(strings.TrimSpace(input.Phone), fmt.Sprint(minPhoneLength)) {
				return ErrInvalidPhone
			}
		case FieldEmail:
			if !govalidator.IsEmail(input.Email) {
				return ErrInvalidEmail
			}
		case FieldPanCard:
			if !govalidator.MinStringLength(strings.TrimSpace(input.PanCard), fmt.Sprint(minPanLength)) {
				return ErrInvalidPanCard
			}
		case FieldLoanType:
			if !input.LoanType.IsValid() {
				return ErrInvalidLoanType
			}
		case FieldRequestedAmount:
			if !validAmount(input.RequestedAmount) {
				return ErrInvalidAmount
			}
		case FieldMonthlyIncome:
			if !validAmount(input.MonthlyIncome) {
				return ErrInvalidIncome
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// validAmount also rejects NaN and infinities; neither can be encoded as JSON.
func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= minAmount
}

func (v *FormValidator) validateChecklist(docs models.Documents) error {
	for slot := range docs {
		if !slot.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnknownDocumentSlot, slot)
		}
	}
	return nil
}

func (v *FormValidator) validateBankSelection(banks []models.BankName) error {
	if len(banks) == 0 {
		return ErrEmptyBankSelection
	}

	seen := make(map[models.BankName]struct{}, len(banks))
	for _, bank := range banks {
		if !bank.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnknownBank, bank)
		}
		if _, ok := seen[bank]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateBank, bank)
		}
		seen[bank] = struct{}{}
	}
	return nil
}

func leadInputOf(lead models.Lead) models.LeadInput {
	return models.LeadInput{
		FullName:        lead.FullName,
		Phone:           lead.Phone,
		Email:           lead.Email,
		PanCard:         lead.PanCard,
		LoanType:        lead.LoanType,
		RequestedAmount: lead.RequestedAmount,
		MonthlyIncome:   lead.MonthlyIncome,
		Notes:           lead.Notes,
	}
}
