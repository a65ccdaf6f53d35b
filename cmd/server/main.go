package main

import (
	"context"
	"fmt"

	"github.com/procurio/purchasing-automation/internal/adapter"
	"github.com/procurio/purchasing-automation/internal/config"
	"github.com/procurio/purchasing-automation/internal/handler"
	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/internal/server"
	"github.com/procurio/purchasing-automation/internal/service"
	"github.com/procurio/purchasing-automation/internal/store"
	"github.com/procurio/purchasing-automation/internal/validators"
	"github.com/procurio/purchasing-automation/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("purchasing-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, db, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer db.Close()

	llm, err := adapter.NewOpenAIClient(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating upstream client")
	}
	if !llm.Configured() {
		log.Warn().Msg("upstream API key is not configured, pipeline runs will fail fast")
	}

	services, err := service.NewServices(storages, llm, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	validator := validators.NewRequestValidator()

	handlers, err := handler.NewHandlers(services, validator, llm, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(ctx, storages, cfg.Workers, log).Run()

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
