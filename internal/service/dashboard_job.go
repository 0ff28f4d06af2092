// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/loan-tracker/internal/logger"
	"github.com/MKhiriev/loan-tracker/models"
)

// DefaultDashboardRefreshInterval is used when Start receives a non-positive
// interval.
const DefaultDashboardRefreshInterval = 5 * time.Second

type dashboardRefreshJob struct {
	dashboard DashboardService
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDashboardRefreshJob creates a job that calls dashboard.Stats on a
// ticker. The job is idle until Start is called.
func NewDashboardRefreshJob(dashboard DashboardService, log *logger.Logger) DashboardRefreshJob {
	if log == nil {
		log = logger.Nop()
	}
	return &dashboardRefreshJob{dashboard: dashboard, logger: log}
}

// Start implements DashboardRefreshJob. It stops any previously running job,
// then launches a goroutine that hands a fresh dashboard to sink right away
// and after every interval. The goroutine exits when ctx is cancelled or Stop
// is called.
func (j *dashboardRefreshJob) Start(ctx context.Context, interval time.Duration, sink func(models.DashboardStats, error)) {
	if interval <= 0 {
		interval = DefaultDashboardRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.refresh(jobCtx, sink)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx, sink)
			}
		}
	}()
}

func (j *dashboardRefreshJob) refresh(ctx context.Context, sink func(models.DashboardStats, error)) {
	stats, err := j.dashboard.Stats(ctx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		j.logger.Err(err).Str("func", "dashboardRefreshJob.refresh").Msg("dashboard refresh failed")
	}
	sink(stats, err)
}

// Stop implements DashboardRefreshJob. It cancels the goroutine's context and
// blocks until the goroutine has exited. Safe to call when the job is not
// running.
func (j *dashboardRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
