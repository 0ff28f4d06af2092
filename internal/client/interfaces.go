// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"time"

	"github.com/MKhiriev/loan-tracker/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until the user signs in and returns the new session.
	LoginFlow(ctx context.Context) (models.ActiveSession, error)
	// MainLoop blocks while the user works and reports whether they logged
	// out.
	MainLoop(ctx context.Context, session models.ActiveSession, refreshInterval time.Duration) (logout bool, err error)
}
