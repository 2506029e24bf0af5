// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-parkour-client/models"

type startDoneMsg struct {
	resp models.StartResponse
	err  error
}

// choiceDoneMsg carries the session id captured when the choice was sent.
type choiceDoneMsg struct {
	sessionID string
	resp      models.ChoiceResponse
	err       error
}

type stateDoneMsg struct {
	sessionID string
	resp      models.StateResponse
	err       error
}

// revealMsg fires when item pos of reveal batch is due. gen is the
// transcript generation the batch was scheduled in.
type revealMsg struct {
	gen   int
	batch int
	pos   int
}

type historyLoadedMsg struct {
	sessions []models.SessionRecord
	err      error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
