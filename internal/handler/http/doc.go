// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http serves the game endpoints of the replay server.
//
// Routes mirror the game server the client talks to:
//
//	POST /api/game/start
//	POST /api/game/{session_id}/choice
//	GET  /api/game/{session_id}/state
//	GET  /version
//
// Every request gets a trace id and an access-log line. Responses are
// gzip-compressed for clients that accept it. Game failures are reported in
// a 200 body under "error"; only an undecodable choice body gets a 4xx.
package http
