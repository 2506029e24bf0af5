// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-parkour-client/internal/logger"
)

const (
	defaultPruneInterval = time.Hour
	defaultRetention     = 30 * 24 * time.Hour
)

type journalPruneJob struct {
	journal JournalService
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewJournalPruneJob creates a job that calls journal.PruneOlderThan on a
// ticker. The job is idle until Start is called.
func NewJournalPruneJob(journal JournalService, logger *logger.Logger) JournalPruneJob {
	return &journalPruneJob{journal: journal, logger: logger}
}

// Start implements JournalPruneJob. Non-positive interval and retention fall
// back to one hour and thirty days. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *journalPruneJob) Start(ctx context.Context, interval, retention time.Duration) {
	if interval <= 0 {
		interval = defaultPruneInterval
	}
	if retention <= 0 {
		retention = defaultRetention
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

		j.prune(jobCtx, retention)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.prune(jobCtx, retention)
			}
		}
	}()
}

func (j *journalPruneJob) prune(ctx context.Context, retention time.Duration) {
	if _, err := j.journal.PruneOlderThan(ctx, retention); err != nil && ctx.Err() == nil {
		j.logger.Err(err).Str("func", "journalPruneJob.prune").Msg("journal prune failed")
	}
}

// Stop implements JournalPruneJob. Safe to call when the job is not running.
func (j *journalPruneJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
