// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the game-server transport.
type ClientAdapter struct {
	// HTTPAddress is the game server address or base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for a single outbound request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string of the transcript journal.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientUI contains terminal UI settings.
type ClientUI struct {
	// RevealStep is the stagger between encounter messages.
	RevealStep time.Duration
	// HistoryLimit caps the history view.
	HistoryLimit int
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// PruneInterval defines how often the journal prune job runs.
	PruneInterval time.Duration
	// JournalRetention is the age after which runs are pruned.
	JournalRetention time.Duration
}

// ClientLog contains log sink settings.
type ClientLog struct {
	// File is the log file path; empty selects the default location.
	File string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	UI      ClientUI
	Workers ClientWorkers
	Log     ClientLog
}

// GetClientConfig builds and validates the client config from the process
// command line, environment and optional JSON file.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(commandLineArgs())
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		UI: ClientUI{
			RevealStep:   cfg.UI.RevealStep,
			HistoryLimit: cfg.UI.HistoryLimit,
		},
		Workers: ClientWorkers{
			PruneInterval:    cfg.Workers.PruneInterval,
			JournalRetention: cfg.Workers.JournalRetention,
		},
		Log: ClientLog{File: cfg.Log.File},
	}

	return clientCfg, clientCfg.validate()
}
