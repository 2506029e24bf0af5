// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	UI struct {
		RevealStep   Duration `json:"reveal_step"`
		HistoryLimit int      `json:"history_limit"`
	} `json:"ui,omitempty"`

	Workers struct {
		PruneInterval    Duration `json:"prune_interval"`
		JournalRetention Duration `json:"journal_retention"`
	} `json:"workers,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`

	Replay struct {
		Address         string   `json:"address"`
		ScenarioFile    string   `json:"scenario_file"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"replay,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		UI: UI{
			RevealStep:   time.Duration(jsonCfg.UI.RevealStep),
			HistoryLimit: jsonCfg.UI.HistoryLimit,
		},
		Workers: Workers{
			PruneInterval:    time.Duration(jsonCfg.Workers.PruneInterval),
			JournalRetention: time.Duration(jsonCfg.Workers.JournalRetention),
		},
		Log: Log{File: jsonCfg.Log.File},
		Replay: Replay{
			Address:         jsonCfg.Replay.Address,
			ScenarioFile:    jsonCfg.Replay.ScenarioFile,
			ShutdownTimeout: time.Duration(jsonCfg.Replay.ShutdownTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
