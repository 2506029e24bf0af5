// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrEmptyInput is returned by [TurnService.Choose] for blank input.
	ErrEmptyInput = errors.New("empty choice input")

	// ErrNoSession is returned when an operation needs a session id and got
	// none.
	ErrNoSession = errors.New("no active session")

	// ErrServerUnavailable means the game server could not be reached or
	// failed internally.
	ErrServerUnavailable = errors.New("game server unavailable")

	// ErrSessionExpired means the server no longer knows the session route.
	ErrSessionExpired = errors.New("game session expired")

	// ErrProtocol means the server answered with something the client cannot
	// use: a rejected request, an unexpected status or a malformed body.
	ErrProtocol = errors.New("unexpected game server response")
)
