// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client is the terminal client of the parkour game.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-parkour-client/internal/adapter"
	"github.com/MKhiriev/go-parkour-client/internal/client"
	"github.com/MKhiriev/go-parkour-client/internal/config"
	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/MKhiriev/go-parkour-client/internal/service"
	"github.com/MKhiriev/go-parkour-client/internal/store"
	"github.com/MKhiriev/go-parkour-client/internal/tui"
	"github.com/MKhiriev/go-parkour-client/internal/workers"
	"github.com/MKhiriev/go-parkour-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("parkour-client", cfg.Log.File)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err = run(ctx, cfg, buildInfo, log); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	gameAdapter, err := adapter.NewHTTPGameServerAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create game server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("close local storage")
		}
	}()

	services := service.NewClientServices(storages, gameAdapter, cfg.UI, log)
	queue := workers.NewJournalQueue(0, log)

	ui, err := tui.New(services, queue, cfg.UI, buildInfo, log)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	app, err := client.NewApp(ui, workers.New(
		queue,
		workers.NewPruneWorker(services.JournalPruneJob, cfg.Workers),
	), log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(ctx)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
