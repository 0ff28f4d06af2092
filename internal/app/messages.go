// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains user-facing message strings shared by the terminal UI
// and the client runtime.
//
// Keeping them in one place keeps wording consistent across screens.
package app

const (
	// MsgInvalidCredentials is shown when the user id and password do not
	// match any stored user.
	MsgInvalidCredentials = "Invalid user ID or password"

	// MsgCredentialsRequired is shown when the login form is submitted with
	// an empty field.
	MsgCredentialsRequired = "User ID and password are required"

	MsgStorageFull = "Storage is full, free some space and try again"

	// MsgStorageUnavailable is shown for any other storage failure.
	MsgStorageUnavailable = "Storage is unavailable, try again later"

	MsgLeadSaved        = "Lead saved"
	MsgDocumentsSaved   = "Documents saved, record moved to bank pending"
	MsgDocumentsUpdated = "Documents updated"
	MsgAppliedToBanks   = "Applications created"
	MsgStatusUpdated    = "Bank status updated"
	MsgCopied           = "Copied to clipboard"

	// MsgRecordGone is shown when the record an action was started for has
	// been moved by another tab or process in the meantime.
	MsgRecordGone = "Record is no longer pending, the list was refreshed"

	MsgNothingSelected = "Nothing selected"
	MsgLoading         = "Loading..."
	MsgEmptyList       = "No records"
)
