// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package replay

import (
	"context"

	"github.com/MKhiriev/go-parkour-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/replay_mock.go -package=mock

// Replayer answers the three game endpoints from a recording.
type Replayer interface {
	// Start opens a new session at the beginning of the recording.
	Start(ctx context.Context) models.StartResponse
	// Choose serves the next recorded step of sessionID.
	Choose(ctx context.Context, sessionID, input string) models.ChoiceResponse
	// State returns the last snapshot served to sessionID.
	State(ctx context.Context, sessionID string) models.StateResponse
}

// IDGenerator produces session identifiers.
type IDGenerator interface {
	Generate() string
}
