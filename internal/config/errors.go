// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid game-server adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid journal storage settings
	// (for example, empty DSN or an in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidUIConfigs indicates invalid terminal UI settings
	// (for example, a negative reveal step).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero prune interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidReplayConfigs indicates invalid replay server settings
	// (for example, an empty listen address).
	ErrInvalidReplayConfigs = errors.New("invalid replay server configuration")
)
