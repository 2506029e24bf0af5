// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig]. Group-level rules live on
// [ClientConfig.validate]; nothing is checked here yet.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.UI.RevealStep < 0 || cfg.UI.HistoryLimit <= 0 {
		return ErrInvalidUIConfigs
	}

	if cfg.Workers.PruneInterval <= 0 || cfg.Workers.JournalRetention <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ReplayServerConfig) validate() error {
	if cfg.Address == "" || cfg.ShutdownTimeout <= 0 {
		return ErrInvalidReplayConfigs
	}

	return nil
}
