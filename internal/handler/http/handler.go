package http

import (
	"github.com/procurio/purchasing-automation/internal/adapter"
	"github.com/procurio/purchasing-automation/internal/config"
	"github.com/procurio/purchasing-automation/internal/logger"
	"github.com/procurio/purchasing-automation/internal/service"
	"github.com/procurio/purchasing-automation/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	llm       adapter.LLMClient

	appConfig    config.App
	serverConfig config.Server
	rateLimiter  *rateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, llm adapter.LLMClient, appConfig config.App, serverConfig config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		validator:    validator,
		llm:          llm,
		appConfig:    appConfig,
		serverConfig: serverConfig,
		rateLimiter:  newRateLimiter(appConfig.RateLimitPerDay),
		logger:       logger,
	}
}
