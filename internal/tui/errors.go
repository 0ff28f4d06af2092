// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/loan-tracker/internal/app"
	"github.com/MKhiriev/loan-tracker/internal/service"
	"github.com/MKhiriev/loan-tracker/internal/store"
)

// ErrUserQuit is returned by LoginFlow when the user leaves with ctrl+c.
var ErrUserQuit = errors.New("user quit")

// humanizeError maps service and storage failures to messages for staff.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrInvalidCredentials):
		return app.MsgInvalidCredentials
	case errors.Is(err, service.ErrNotFound):
		return app.MsgRecordGone
	case errors.Is(err, store.ErrQuotaExceeded):
		return app.MsgStorageFull
	default:
		return app.MsgStorageUnavailable
	}
}
