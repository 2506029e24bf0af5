// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers of the replay server.
package handler

import (
	"github.com/MKhiriev/go-parkour-client/internal/handler/http"
	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/MKhiriev/go-parkour-client/internal/replay"
	"github.com/MKhiriev/go-parkour-client/models"
)

// Handlers groups the transport handlers.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the handlers that serve replayer.
func NewHandlers(replayer replay.Replayer, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if replayer == nil {
		return nil, errNoReplayer
	}

	return &Handlers{
		HTTP: http.NewHandler(replayer, buildInfo, logger),
	}, nil
}
