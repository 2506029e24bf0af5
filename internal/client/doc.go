// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal UI in the foreground with the journal write queue and
// the journal prune job in the background, in a single process lifecycle.
package client
