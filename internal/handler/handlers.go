package handler

import (
	"github.com/procurio/purchasing-automation/internal/adapter"
	"github.com/procurio/purchasing-automation/internal/config"
	"github.com/procurio/purchasing-automation/internal/handler/http"
	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/internal/service"
	"github.com/procurio/purchasing-automation/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, validator validators.Validator, llm adapter.LLMClient, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, validator, llm, cfg.App, cfg.Server, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
