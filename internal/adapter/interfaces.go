// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// game server.
//
// The primary abstraction is [GameServerAdapter], which decouples the service
// layer from the HTTP API. The package ships an HTTP/REST implementation
// ([NewHTTPGameServerAdapter]).
//
// Non-2xx statuses are mapped to the sentinel errors in errors.go so callers
// can use [errors.Is]. Failures the server reports inside a 200 body (the
// "error" field) are returned as part of the decoded response, not as errors.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-parkour-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/game_server_adapter_mock.go -package=mock

// GameServerAdapter talks to the game server on behalf of one client.
type GameServerAdapter interface {
	// StartSession creates a new run via POST /api/game/start.
	// A response without "error" always carries a non-empty session id;
	// otherwise [ErrMalformedResponse] is returned.
	StartSession(ctx context.Context) (models.StartResponse, error)

	// SubmitChoice sends the player's free text for sessionID via
	// POST /api/game/{session_id}/choice.
	SubmitChoice(ctx context.Context, sessionID, input string) (models.ChoiceResponse, error)

	// GetState fetches the current snapshot of sessionID via
	// GET /api/game/{session_id}/state.
	GetState(ctx context.Context, sessionID string) (models.StateResponse, error)
}
