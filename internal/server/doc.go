// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the replay server's HTTP listener and shuts it down
// gracefully when its context ends.
package server
