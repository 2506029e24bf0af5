// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background workers under one lifecycle.
package workers

import "context"

// Worker is a background worker with an explicit lifecycle.
//
// Start must not block: implementations spawn their own goroutines and tie
// them to ctx. Stop blocks until those goroutines have exited.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
