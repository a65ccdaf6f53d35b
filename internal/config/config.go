// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Procurio

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// purchasing-automation application. It aggregates all sub-configurations and
// is populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the access token,
	// rate-limit quota, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends, including
	// the relational database and the generated-document output directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for the upstream language-model service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control access,
// throttling, and versioning.
type App struct {
	// AccessToken is the shared secret clients must present in the
	// X-API-Key header. When empty, authentication is disabled.
	// Env: APP_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// RateLimitPerDay caps the number of pipeline runs a single client IP
	// may start per calendar day. Zero disables the limit.
	// Env: APP_RATE_LIMIT_PER_DAY
	RateLimitPerDay int `env:"RATE_LIMIT_PER_DAY"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system settings for generated documents.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver selects the database driver: "pgx" for PostgreSQL or
	// "sqlite3" for an embedded SQLite database. Defaults to "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the Data Source Name (connection string) used to open the
	// database connection. For pgx this is a postgres:// URI; for sqlite3
	// a file path (e.g. "purchasing.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for generated document output.
type Files struct {
	// OutputDir is the directory where generated markdown documents are
	// mirrored for direct inspection. Optional; documents are always
	// persisted in the database regardless.
	// Env: STORAGE_FILES_OUTPUT_DIR
	OutputDir string `env:"OUTPUT_DIR"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "5m"). Streaming
	// endpoints are exempt.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSAllowedOrigins lists origins allowed to call the API from a
	// browser. Empty disables CORS headers entirely.
	// Env: SERVER_CORS_ALLOWED_ORIGINS (comma-separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter holds configuration for the upstream language-model service used
// to draft analyses, purchase requests, and emails.
type Adapter struct {
	// OpenAIBaseURL is the base URL of an OpenAI-compatible chat
	// completions API (e.g. "https://api.openai.com").
	// Env: ADAPTER_OPENAI_BASE_URL
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	// OpenAIAPIKey is the bearer token for the upstream service. When
	// empty, generation endpoints report the upstream as unconfigured.
	// Env: ADAPTER_OPENAI_API_KEY
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`

	// Model is the model identifier used for analysis generation.
	// Env: ADAPTER_MODEL
	Model string `env:"MODEL"`

	// DraftModel is the (usually cheaper) model identifier used for
	// purchase-request and email drafting.
	// Env: ADAPTER_DRAFT_MODEL
	DraftModel string `env:"DRAFT_MODEL"`

	// RequestTimeout is the per-call deadline for upstream requests
	// (e.g. "60s", "2m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// CleanupInterval is how often the retention worker scans for expired
	// generated documents.
	// Env: WORKERS_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`

	// DocumentMaxAge is the age past which generated documents are
	// removed. Zero disables retention cleanup.
	// Env: WORKERS_DOCUMENT_MAX_AGE
	DocumentMaxAge time.Duration `env:"DOCUMENT_MAX_AGE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
