// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package config

import "time"

// Default values applied to fields left unset by every configuration source.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultDBDriver        = "sqlite3"
	DefaultDSN             = "purchasing.db"
	DefaultRequestTimeout  = 5 * time.Minute
	DefaultOpenAIBaseURL   = "https://api.openai.com"
	DefaultModel           = "gpt-4o"
	DefaultDraftModel      = "gpt-4o-mini"
	DefaultUpstreamTimeout = 90 * time.Second
	DefaultCleanupInterval = 10 * time.Minute
)

// applyDefaults fills in defaults for fields no source provided. Defaults are
// applied before validation so a bare startup still yields a usable local
// configuration.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDBDriver
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Adapter.OpenAIBaseURL == "" {
		cfg.Adapter.OpenAIBaseURL = DefaultOpenAIBaseURL
	}
	if cfg.Adapter.Model == "" {
		cfg.Adapter.Model = DefaultModel
	}
	if cfg.Adapter.DraftModel == "" {
		cfg.Adapter.DraftModel = DefaultDraftModel
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultUpstreamTimeout
	}
	if cfg.Workers.CleanupInterval == 0 {
		cfg.Workers.CleanupInterval = DefaultCleanupInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Any violation is
// fatal: the process must not start with a partially valid configuration.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.OpenAIBaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.RateLimitPerDay < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Workers.DocumentMaxAge < 0 || cfg.Workers.CleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
