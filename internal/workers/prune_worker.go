// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-parkour-client/internal/config"
)

// PruneJob is the journal prune job as exposed by the service layer.
type PruneJob interface {
	Start(ctx context.Context, interval, retention time.Duration)
	Stop()
}

// PruneWorker binds a PruneJob to its configured schedule.
type PruneWorker struct {
	job       PruneJob
	interval  time.Duration
	retention time.Duration
}

func NewPruneWorker(job PruneJob, cfg config.ClientWorkers) *PruneWorker {
	return &PruneWorker{
		job:       job,
		interval:  cfg.PruneInterval,
		retention: cfg.JournalRetention,
	}
}

func (w *PruneWorker) Start(ctx context.Context) {
	w.job.Start(ctx, w.interval, w.retention)
}

func (w *PruneWorker) Stop() {
	w.job.Stop()
}
