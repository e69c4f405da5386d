// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pack-sync/internal/adapter"
	"github.com/MKhiriev/go-pack-sync/internal/config"
	"github.com/MKhiriev/go-pack-sync/internal/connectivity"
	"github.com/MKhiriev/go-pack-sync/internal/logger"
	"github.com/MKhiriev/go-pack-sync/internal/service"
	"github.com/MKhiriev/go-pack-sync/internal/store"
	"github.com/MKhiriev/go-pack-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pack-sync")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	remote := adapter.NewHTTPRemoteClient(adapter.HTTPClientConfig{
		BaseURL: cfg.Remote.BaseURL,
		Token:   cfg.Remote.Token,
		Timeout: cfg.Remote.RequestTimeout,
	})

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	monitor := connectivity.NewProbeMonitor(remote, cfg.Sync.Interval, log)
	monitor.Start(ctx)
	defer monitor.Stop()

	services := service.NewServices(storages, remote, monitor, service.Hooks{}, cfg.Sync, log)

	if err = services.Orchestrator.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("start sync engine")
	}
	defer services.Orchestrator.Stop()

	unsubscribe := services.Orchestrator.Subscribe(func(state models.SyncState) {
		log.Info().
			Bool("connected", state.IsConnected).
			Bool("syncing", state.IsSyncing).
			Int("pending", len(state.PendingChanges)).
			Int("conflicts", len(state.Conflicts)).
			Msg("sync state")
	})
	defer unsubscribe()

	<-ctx.Done()
	log.Info().Msg("shutting down")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
