// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package turn holds the turn-protocol core of the client: the Session record
// and pure reducers that fold server responses into the next Session plus an
// [Outcome] describing what the rendering layer has to show.
//
// Nothing in this package performs I/O or touches the terminal, so the whole
// request/response cycle can be tested with plain values.
package turn

import (
	"strings"

	"github.com/MKhiriev/go-parkour-client/models"
)

// Phase is the screen the client is on.
type Phase int

const (
	PhaseWelcome Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseWelcome:
		return "welcome"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session is the client's view of one run. The zero value is "no session".
// Reducers return a new Session instead of mutating the one they receive.
type Session struct {
	// ID is the opaque token returned by the start call.
	ID string

	// CurrentEncounter is the last encounter payload. Kept for reference only,
	// it is never rendered a second time.
	CurrentEncounter *models.Encounter

	// State is the latest snapshot received from the server.
	State *models.GameState
}

// Live reports whether a session has been started.
func (s Session) Live() bool {
	return s.ID != ""
}

// Owns reports whether a request sent for sessionID still belongs to s.
func (s Session) Owns(sessionID string) bool {
	return s.Live() && s.ID == sessionID
}

// NormalizeInput trims raw player input. ok is false for empty or
// whitespace-only input, which callers treat as a silent no-op.
func NormalizeInput(raw string) (input string, ok bool) {
	input = strings.TrimSpace(raw)
	return input, input != ""
}
