// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client's use cases: talking to the game server
// and keeping the local transcript journal.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-parkour-client/internal/turn"
	"github.com/MKhiriev/go-parkour-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TurnService performs the three game-server round trips. Transport errors
// are mapped to the service sentinels in errors.go; server-reported errors
// stay inside the returned response.
type TurnService interface {
	// Start opens a new run.
	Start(ctx context.Context) (models.StartResponse, error)

	// Choose submits the player's text for sessionID. input must already be
	// trimmed; blank input returns [ErrEmptyInput] without a request.
	Choose(ctx context.Context, sessionID, input string) (models.ChoiceResponse, error)

	// Refresh fetches the authoritative snapshot of sessionID.
	Refresh(ctx context.Context, sessionID string) (models.StateResponse, error)
}

// JournalService keeps the local play-log of runs and their transcripts.
type JournalService interface {
	// BeginRun journals the start of sessionID.
	BeginRun(ctx context.Context, sessionID string) error

	// Record appends displayed lines to the transcript of sessionID.
	Record(ctx context.Context, sessionID string, entries ...turn.Entry) error

	// UpdateTurns stores how many choices of sessionID were resolved.
	UpdateTurns(ctx context.Context, sessionID string, turns int) error

	// FinishRun marks sessionID as ended with reason.
	FinishRun(ctx context.Context, sessionID string, turns int, reason string) error

	// Recent lists the newest runs, up to the configured history limit.
	Recent(ctx context.Context) ([]models.SessionRecord, error)

	// Transcript returns the journaled lines of sessionID in display order.
	Transcript(ctx context.Context, sessionID string) ([]models.TranscriptEntry, error)

	// ExportText renders the transcript of sessionID as plain text.
	ExportText(ctx context.Context, sessionID string) (string, error)

	// PruneOlderThan deletes runs started more than age ago.
	PruneOlderThan(ctx context.Context, age time.Duration) (int64, error)
}

// JournalPruneJob periodically removes old runs from the journal.
type JournalPruneJob interface {
	// Start prunes once right away and then every interval, deleting runs
	// older than retention. A running job is stopped first.
	Start(ctx context.Context, interval, retention time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
