// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-parkour-client/internal/logger"
)

const defaultQueueSize = 256

// Task is one journal write.
type Task func(ctx context.Context) error

type queuedTask struct {
	name string
	run  Task
}

// JournalQueue executes journal writes one at a time, in the order they were
// enqueued. The UI enqueues from its update loop and never waits for the
// database.
type JournalQueue struct {
	logger *logger.Logger
	size   int

	mu      sync.Mutex
	tasks   chan queuedTask
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

func NewJournalQueue(size int, logger *logger.Logger) *JournalQueue {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &JournalQueue{logger: logger, size: size}
}

// Start implements Worker. A running queue is stopped first.
func (q *JournalQueue) Start(ctx context.Context) {
	q.Stop()

	q.mu.Lock()
	defer q.mu.Unlock()

	tasks := make(chan queuedTask, q.size)
	runCtx, cancel := context.WithCancel(ctx)
	q.tasks = tasks
	q.cancel = cancel
	q.running = true

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for task := range tasks {
			q.exec(runCtx, task)
		}
	}()
}

func (q *JournalQueue) exec(ctx context.Context, task queuedTask) {
	if err := task.run(ctx); err != nil {
		q.logger.Err(err).
			Str("func", "JournalQueue.exec").
			Str("task", task.name).
			Msg("journal write failed")
	}
}

// Enqueue schedules task. It returns false without blocking when the queue
// is not running or is full; the write is dropped and logged.
func (q *JournalQueue) Enqueue(name string, task Task) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.running {
		q.logger.Warn().Str("task", name).Msg("journal queue is not running, write dropped")
		return false
	}

	select {
	case q.tasks <- queuedTask{name: name, run: task}:
		return true
	default:
		q.logger.Warn().Str("task", name).Msg("journal queue is full, write dropped")
		return false
	}
}

// Stop implements Worker. Tasks already enqueued are executed before Stop
// returns. Safe to call when the queue is not running.
func (q *JournalQueue) Stop() {
	q.mu.Lock()
	if !q.running {
		q.mu.Unlock()
		return
	}
	q.running = false
	close(q.tasks)
	cancel := q.cancel
	q.mu.Unlock()

	q.wg.Wait()
	cancel()
}
