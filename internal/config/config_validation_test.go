// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, DefaultDBDriver, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultOpenAIBaseURL, cfg.Adapter.OpenAIBaseURL)
	assert.Equal(t, DefaultModel, cfg.Adapter.Model)
	assert.Equal(t, DefaultDraftModel, cfg.Adapter.DraftModel)
	assert.Equal(t, DefaultUpstreamTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultCleanupInterval, cfg.Workers.CleanupInterval)
}

func TestApplyDefaults_DoesNotOverride(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Server.HTTPAddress = "0.0.0.0:9000"
	cfg.Storage.DB.Driver = "pgx"
	cfg.Storage.DB.DSN = "postgres://localhost/db"

	cfg.applyDefaults()

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/db", cfg.Storage.DB.DSN)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "defaults are valid",
			mutate:  func(cfg *StructuredConfig) {},
			wantErr: nil,
		},
		{
			name:    "empty http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "non-positive request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "unsupported driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty upstream base url",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.OpenAIBaseURL = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative rate limit",
			mutate:  func(cfg *StructuredConfig) { cfg.App.RateLimitPerDay = -1 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative document max age",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.DocumentMaxAge = -time.Hour },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()

			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
