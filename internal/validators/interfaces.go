// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the tracker's form input before it reaches the
// services: the lead form, the document checklist, the bank selection and the
// status form. Rules mirror what the forms accept; the services store whatever
// they are given.
package validators

import "context"

// Validator checks one form value. Passing field names limits the check to
// those fields; unsupported value types are rejected with ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
