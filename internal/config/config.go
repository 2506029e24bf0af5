// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the game
// client. It is populated by merging defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the game server address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local transcript journal settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// UI holds terminal UI tuning.
	UI UI `envPrefix:"UI_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the log sink settings.
	Log Log `envPrefix:"LOG_"`

	// Replay holds the settings of the local replay server.
	Replay Replay `envPrefix:"REPLAY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds settings of the outbound game-server transport.
type Adapter struct {
	// HTTPAddress is the game server address, either "host:port" or a full
	// base URL (e.g. "http://localhost:8001").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of the local play-log.
type Storage struct {
	// DB holds the SQLite journal settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite journal.
type DB struct {
	// DSN is the SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// UI holds terminal UI tuning.
type UI struct {
	// RevealStep is the stagger between encounter messages.
	// Env: UI_REVEAL_STEP
	RevealStep time.Duration `env:"REVEAL_STEP"`

	// HistoryLimit caps the number of runs listed in the history view.
	// Env: UI_HISTORY_LIMIT
	HistoryLimit int `env:"HISTORY_LIMIT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// PruneInterval is how often old journal runs are deleted.
	// Env: WORKERS_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`

	// JournalRetention is how long a run is kept in the journal.
	// Env: WORKERS_JOURNAL_RETENTION
	JournalRetention time.Duration `env:"JOURNAL_RETENTION"`
}

// Log holds the log sink settings.
type Log struct {
	// File is the log file path. Empty means "logs" next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Replay holds settings of the local replay server.
type Replay struct {
	// Address is the listen address in host:port form.
	// Env: REPLAY_ADDRESS
	Address string `env:"ADDRESS"`

	// ScenarioFile is the recorded scenario to play back. Empty selects the
	// built-in scenario.
	// Env: REPLAY_SCENARIO
	ScenarioFile string `env:"SCENARIO"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: REPLAY_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Defaults applied when no source sets a value.
const (
	DefaultHTTPAddress      = "localhost:8001"
	DefaultRequestTimeout   = 15 * time.Second
	DefaultDSN              = "parkour-journal.db"
	DefaultRevealStep       = 500 * time.Millisecond
	DefaultHistoryLimit     = 20
	DefaultPruneInterval    = time.Hour
	DefaultJournalRetention = 30 * 24 * time.Hour
	DefaultReplayAddress    = "localhost:8001"
	DefaultShutdownTimeout  = 5 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		UI: UI{
			RevealStep:   DefaultRevealStep,
			HistoryLimit: DefaultHistoryLimit,
		},
		Workers: Workers{
			PruneInterval:    DefaultPruneInterval,
			JournalRetention: DefaultJournalRetention,
		},
		Replay: Replay{
			Address:         DefaultReplayAddress,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// defaults, environment, the given command-line args and the JSON file named
// by either of them.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func commandLineArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}
