// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal rendering layer of the client, built on
// bubbletea. It drives package turn with key presses and server responses
// and draws whatever outcome the reducers return.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-parkour-client/internal/config"
	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/MKhiriev/go-parkour-client/internal/service"
	"github.com/MKhiriev/go-parkour-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNilServices = errors.New("tui: services are nil")

type TUI struct {
	services  *service.ClientServices
	queue     journalQueue
	cfg       config.ClientUI
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(
	services *service.ClientServices,
	queue journalQueue,
	cfg config.ClientUI,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*TUI, error) {
	if services == nil || services.TurnService == nil || services.JournalService == nil {
		return nil, errNilServices
	}
	return &TUI{
		services:  services,
		queue:     queue,
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the UI and blocks until the player quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.queue, t.cfg, t.buildInfo, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	if _, ok := finalModel.(appModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
