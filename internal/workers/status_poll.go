// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package workers

import (
	"context"
	"time"

	"github.com/mkarneev/homestock/internal/service"
)

// StatusPollWorker runs the sync service's remote-status poll job on the
// configured interval.
type StatusPollWorker struct {
	ctx      context.Context
	job      service.StatusPollJob
	interval time.Duration
}

func NewStatusPollWorker(ctx context.Context, job service.StatusPollJob, interval time.Duration) *StatusPollWorker {
	return &StatusPollWorker{ctx: ctx, job: job, interval: interval}
}

func (w *StatusPollWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}

func (w *StatusPollWorker) Stop() {
	w.job.Stop()
}
