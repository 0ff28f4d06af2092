// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every "record is not where the operation expects
// it" error. It is an expected outcome, not an I/O failure.
var ErrNotFound = errors.New("not found")

var (
	ErrLeadNotFound        = fmt.Errorf("lead %w", ErrNotFound)
	ErrDocumentNotFound    = fmt.Errorf("document record %w", ErrNotFound)
	ErrApplicationNotFound = fmt.Errorf("bank application %w", ErrNotFound)
	ErrInvalidCredentials  = fmt.Errorf("user %w: invalid credentials", ErrNotFound)
)
