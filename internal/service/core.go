// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/loan-tracker/internal/logger"
	"github.com/MKhiriev/loan-tracker/internal/store"
	"github.com/MKhiriev/loan-tracker/internal/utils"
)

// Clock returns the current time.
type Clock func() time.Time

// SystemClock is the production [Clock].
func SystemClock() time.Time {
	return time.Now().UTC()
}

// core is shared by all services of one process. mu serialises every
// operation the way a single UI thread would; writes inside an operation are
// still independent and are not rolled back on failure.
type core struct {
	repo   store.TrackingRepository
	clock  Clock
	logger *logger.Logger
	mu     *sync.Mutex
}

func newCore(repo store.TrackingRepository, clock Clock, log *logger.Logger) *core {
	if clock == nil {
		clock = SystemClock
	}
	if log == nil {
		log = logger.Nop()
	}
	return &core{repo: repo, clock: clock, logger: log, mu: &sync.Mutex{}}
}

func (c *core) now() time.Time {
	return c.clock().UTC()
}

// log returns the service logger tagged with the session carried by ctx.
func (c *core) log(ctx context.Context) *logger.Logger {
	if session, ok := utils.GetSessionFromContext(ctx); ok {
		return c.logger.WithSession(session.SessionID, session.UserID)
	}
	return c.logger
}
