// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-parkour-client/internal/adapter"
	"github.com/MKhiriev/go-parkour-client/internal/config"
	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/MKhiriev/go-parkour-client/internal/store"
)

type ClientServices struct {
	TurnService     TurnService
	JournalService  JournalService
	JournalPruneJob JournalPruneJob
}

func NewClientServices(storages *store.ClientStorages, gameAdapter adapter.GameServerAdapter, uiCfg config.ClientUI, logger *logger.Logger) *ClientServices {
	journalSvc := NewJournalService(storages.JournalRepository, uiCfg.HistoryLimit, logger)

	return &ClientServices{
		TurnService:     NewTurnService(gameAdapter, logger),
		JournalService:  journalSvc,
		JournalPruneJob: NewJournalPruneJob(journalSvc, logger),
	}
}
