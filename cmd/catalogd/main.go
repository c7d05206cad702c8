package main

import (
	"fmt"

	"github.com/joylabs/catalogsync/internal/adapter"
	"github.com/joylabs/catalogsync/internal/config"
	"github.com/joylabs/catalogsync/internal/handler"
	"github.com/joylabs/catalogsync/internal/logger"
	"github.com/joylabs/catalogsync/internal/server"
	"github.com/joylabs/catalogsync/internal/service"
	"github.com/joylabs/catalogsync/internal/store"
	"github.com/joylabs/catalogsync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("catalogd")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	api := adapter.NewHTTPCatalogAPI(cfg.CatalogAPI, log)
	services := service.NewServices(storages, api, cfg.Sync, log)

	handlers, err := handler.NewHandlers(services, storages, cfg.Webhook, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Webhook, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(services, cfg.Sync)
	backgroundWorkers.Run()
	defer backgroundWorkers.Stop()

	srv.RunServer()
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
