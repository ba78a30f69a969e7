// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-settings-sync/internal/logger"
)

type syncJob struct {
	synchronisers []Synchroniser
	logger        *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that drives every synchroniser on a ticker.
// The job is idle until Start is called.
func NewSyncJob(synchronisers []Synchroniser, log *logger.Logger) SyncJob {
	return &syncJob{synchronisers: synchronisers, logger: log}
}

// Start implements SyncJob. It stops any previously running job, then launches
// a background goroutine that syncs every resource once immediately and again
// every interval. If interval is zero or negative it defaults to 5 minutes.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
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

		j.syncAll(jobCtx)

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.syncAll(jobCtx)
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *syncJob) syncAll(ctx context.Context) {
	for _, s := range j.synchronisers {
		if ctx.Err() != nil {
			return
		}
		if err := s.Sync(ctx); err != nil {
			j.logger.Err(err).Str("resource", s.Key().String()).Msg("scheduled sync failed")
		}
	}
}
