// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package replay plays back a recorded run of the game server.
//
// A [Scenario] holds the start response and the choice responses in the
// order they were served. A [Player] hands the recording out to any number
// of sessions, one step per submitted choice, and answers state queries from
// the last snapshot it served. It makes no game decisions: the player's text
// only has to be non-empty.
//
// The replay server in cmd/replay serves a Player over HTTP so the client can
// be run and tested without the real game server.
package replay
