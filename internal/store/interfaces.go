// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the local transcript journal in SQLite.
//
// The journal is a play-log: what the client displayed, per run. It is never
// read back into a live game session.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-parkour-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// JournalRepository stores played runs and their transcripts.
type JournalRepository interface {
	// CreateSession records the start of a run. Returns
	// [ErrSessionAlreadyExists] when the id is already journaled.
	CreateSession(ctx context.Context, rec models.SessionRecord) error

	// AppendEntries adds entries to the end of a run's transcript. Seq is
	// assigned by the repository and continues after the last stored entry.
	AppendEntries(ctx context.Context, sessionID string, entries ...models.TranscriptEntry) error

	// UpdateTurns stores the number of resolved choices of a run.
	UpdateTurns(ctx context.Context, sessionID string, turns int) error

	// FinishSession marks a run as ended.
	FinishSession(ctx context.Context, sessionID string, finishedAt time.Time, turns int, reason string) error

	// ListSessions returns up to limit runs, newest first.
	ListSessions(ctx context.Context, limit int) ([]models.SessionRecord, error)

	// GetTranscript returns a run's entries ordered by Seq.
	GetTranscript(ctx context.Context, sessionID string) ([]models.TranscriptEntry, error)

	// PruneBefore deletes runs started before cutoff together with their
	// transcripts and returns the number of deleted runs.
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
