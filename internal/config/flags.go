// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the client's command-line flags from args.
//
// Flags:
//
//	-a game server address in format [host]:[port]
//	-d journal database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "15s")
//	-reveal-step delay between encounter messages (e.g., "500ms")
//	-history-limit number of runs shown in the history view
//	-log-file log file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var revealStep time.Duration
	var historyLimit int
	var logFile string

	fs := flag.NewFlagSet("parkour-client", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Game server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Journal database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.DurationVar(&revealStep, "reveal-step", 0, "Delay between encounter messages (e.g., 500ms)")
	fs.IntVar(&historyLimit, "history-limit", 0, "Runs shown in the history view")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		UI: UI{
			RevealStep:   revealStep,
			HistoryLimit: historyLimit,
		},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// ParseReplayFlags parses the replay server's command-line flags from args.
//
// Flags:
//
//	-a listen address in format [host]:[port]
//	-s recorded scenario file
//	-c/-config json file path with configs
//	-log-file log file path
func ParseReplayFlags(args []string) (*StructuredConfig, error) {
	var address NetAddress
	var scenarioFile string
	var jsonConfigPath string
	var logFile string

	fs := flag.NewFlagSet("parkour-replay", flag.ContinueOnError)
	fs.Var(&address, "a", "Listen address host:port")
	fs.StringVar(&scenarioFile, "s", "", "Recorded scenario file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Replay: Replay{
			Address:      address.String(),
			ScenarioFile: scenarioFile,
		},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be a name or an IP address; the port must be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host == "" {
		return errors.New("host must not be empty")
	}

	a.Host = host
	a.Port = port
	return nil
}
