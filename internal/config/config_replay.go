// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ReplayServerConfig is the configuration of the local replay server
// assembled from [StructuredConfig].
type ReplayServerConfig struct {
	// Address is the listen address.
	Address string
	// ScenarioFile is the recorded scenario; empty selects the built-in one.
	ScenarioFile string
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
	// Log holds the log sink settings.
	Log ClientLog
}

// GetReplayServerConfig builds and validates the replay server config from
// the process command line, environment and optional JSON file.
func GetReplayServerConfig() (*ReplayServerConfig, error) {
	return getReplayServerConfig(commandLineArgs())
}

func getReplayServerConfig(args []string) (*ReplayServerConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withReplayFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	replayCfg := &ReplayServerConfig{
		Address:         cfg.Replay.Address,
		ScenarioFile:    cfg.Replay.ScenarioFile,
		ShutdownTimeout: cfg.Replay.ShutdownTimeout,
		Log:             ClientLog{File: cfg.Log.File},
	}

	return replayCfg, replayCfg.validate()
}
