package service

import (
	"github.com/procurio/purchasing-automation/internal/adapter"
	"github.com/procurio/purchasing-automation/internal/config"
	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/internal/store"
)

type Services struct {
	PipelineService PipelineService
	IngestService   IngestService
	OutputService   OutputService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, llm adapter.LLMClient, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	agents := newAgentRunner(llm, storages.HistoryRepository, cfg.Adapter.Model, cfg.Adapter.DraftModel, logger)

	return &Services{
		PipelineService: NewPipelineService(agents, storages.DocumentRepository, cfg.Storage.Files.OutputDir, logger),
		IngestService:   NewIngestService(storages.HistoryRepository, logger),
		OutputService:   NewOutputService(storages.DocumentRepository, cfg.Workers.DocumentMaxAge, logger),
		AppInfoService:  appInfoService,
	}, nil
}
