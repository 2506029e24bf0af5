// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the game client and the replay server.
//
// Configuration is assembled from several sources. Later sources override
// non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The entry points are [GetClientConfig] for the game client and
// [GetReplayServerConfig] for the local replay server.
package config
