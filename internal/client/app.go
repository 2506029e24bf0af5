// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/MKhiriev/go-parkour-client/internal/workers"
)

var errNoUI = errors.New("client: ui is nil")

// UI is the interactive front end the app runs in the foreground.
type UI interface {
	Run(ctx context.Context) error
}

// App runs the UI with the background workers around it.
type App struct {
	ui      UI
	workers *workers.Workers
	logger  *logger.Logger
}

// NewApp constructs an App. bg may be nil when no background work is needed.
func NewApp(ui UI, bg *workers.Workers, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	if bg == nil {
		bg = workers.New()
	}

	return &App{ui: ui, workers: bg, logger: logger}, nil
}

// Run starts the workers, blocks in the UI and stops the workers in reverse
// order once the UI returns.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("client starting")

	a.workers.Start(ctx)
	defer func() {
		a.workers.Stop()
		a.logger.Info().Msg("client stopped")
	}()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
