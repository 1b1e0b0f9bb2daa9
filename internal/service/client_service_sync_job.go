package service

import (
	"context"
	"sync"
	"time"
)

type statusPollJob struct {
	syncService SyncService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewStatusPollJob creates a job that refreshes the remote last-sync marker
// on a ticker. The job is idle until Start is called.
func NewStatusPollJob(syncService SyncService) StatusPollJob {
	return &statusPollJob{syncService: syncService}
}

// Start implements StatusPollJob. It stops any previously running job, then
// launches a background goroutine that calls CheckRemoteStatus every
// interval. If interval is zero or negative it defaults to 15 minutes. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *statusPollJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Minute
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

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.syncService.CheckRemoteStatus(jobCtx)
			}
		}
	}()
}

// Stop implements StatusPollJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *statusPollJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
