// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the access level of a staff account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is a staff account allowed to work with the tracker.
//
// Users are static seed data: the application never creates or edits them.
// Password is stored and compared as plain text.
type User struct {
	// ID is the login of the user (e.g. "admin").
	ID string `json:"id"`

	// Password is the plaintext password matched on login.
	Password string `json:"password"`

	// Role is either [RoleAdmin] or [RoleUser].
	Role Role `json:"role"`
}

// ActiveSession describes the single logged-in user of this storage.
// At most one session exists at a time.
type ActiveSession struct {
	UserID    string    `json:"userId"`
	Role      Role      `json:"role"`
	LoginTime time.Time `json:"loginTime"`

	// SessionID correlates log entries of one session. Sessions written by
	// older versions do not carry it.
	SessionID string `json:"sessionId,omitempty"`
}
