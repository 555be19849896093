// SPDX-License-Identifier: Apache-2.0

package syncer

import (
	"context"
	"sync"
	"time"

	"github.com/minitranslate/vocabsync/models"
)

// Runner is the trigger surface the scheduler drives. *Engine satisfies it.
type Runner interface {
	Run(ctx context.Context) models.SyncResult
}

// Scheduler triggers a Runner on a fixed interval. It carries no back-off
// and no locking of its own; overlapping ticks are harmless because the
// engine's single-flight guard turns them into skipped runs.
type Scheduler struct {
	runner Runner

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler creates a Scheduler for the given runner. The scheduler is
// idle until Start is called.
func NewScheduler(runner Runner) *Scheduler {
	return &Scheduler{runner: runner}
}

// Start stops any previously running schedule, then launches a background
// goroutine that calls Run every interval. If interval is zero or negative
// it defaults to 5 minutes. The goroutine exits when ctx is cancelled or
// Stop is called.
func (s *Scheduler) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	s.Stop()

	s.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = s.runner.Run(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until it has
// fully exited. Safe to call when the scheduler is not running.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}
