// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSessionAlreadyExists is returned when a run with the same session id
	// is already journaled.
	ErrSessionAlreadyExists = errors.New("session already exists")

	// ErrSessionNotFound is returned when an update targets a run that is not
	// journaled.
	ErrSessionNotFound = errors.New("session was not found")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrScanningRow          = errors.New("error scanning row")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
