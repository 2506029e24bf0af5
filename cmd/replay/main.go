// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command replay serves a recorded game run on the game server's endpoints,
// so the client can be played without the real server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-parkour-client/internal/config"
	"github.com/MKhiriev/go-parkour-client/internal/handler"
	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/MKhiriev/go-parkour-client/internal/replay"
	"github.com/MKhiriev/go-parkour-client/internal/server"
	"github.com/MKhiriev/go-parkour-client/internal/utils"
	"github.com/MKhiriev/go-parkour-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.New(os.Stdout, "parkour-replay")
	cfg, err := config.GetReplayServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Log.File != "" {
		log = logger.NewClientLogger("parkour-replay", cfg.Log.File)
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	scenario, err := replay.LoadScenario(cfg.ScenarioFile)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading scenario")
	}

	player := replay.NewPlayer(scenario, utils.NewUUIDGenerator(), log)

	handlers, err := handler.NewHandlers(player, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	fmt.Printf("Replaying %d steps on %s\n", len(scenario.Steps), cfg.Address)
	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
