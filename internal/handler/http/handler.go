// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/MKhiriev/go-parkour-client/internal/replay"
	"github.com/MKhiriev/go-parkour-client/models"
)

// Handler serves a [replay.Replayer] over HTTP.
type Handler struct {
	replayer  replay.Replayer
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewHandler constructs a Handler.
func NewHandler(replayer replay.Replayer, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		replayer:  replayer,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
