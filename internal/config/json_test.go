package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"access_token": "s3cret",
			"rate_limit_per_day": 25,
			"version": "1.2.3"
		},
		"storage": {
			"db": {"driver": "pgx", "dsn": "postgres://localhost/db"},
			"files": {"output_dir": "/var/output"}
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"cors_allowed_origins": ["https://a.example"]
		},
		"adapter": {
			"openai_base_url": "https://llm.internal",
			"openai_api_key": "key-123",
			"model": "gpt-4o",
			"draft_model": "gpt-4o-mini",
			"request_timeout": "90s"
		},
		"workers": {
			"cleanup_interval": "10m",
			"document_max_age": "24h"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.App.AccessToken)
	assert.Equal(t, 25, cfg.App.RateLimitPerDay)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, "postgres://localhost/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/output", cfg.Storage.Files.OutputDir)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"https://a.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "https://llm.internal", cfg.Adapter.OpenAIBaseURL)
	assert.Equal(t, 90*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Workers.CleanupInterval)
	assert.Equal(t, 24*time.Hour, cfg.Workers.DocumentMaxAge)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"server": {"request_timeout": 30000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/definitely/not/there.json")
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"server": `)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON_InvalidString(t *testing.T) {
	var d Duration
	err := d.UnmarshalJSON([]byte(`"soon"`))
	assert.Error(t, err)
}
