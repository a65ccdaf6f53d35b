package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver ("pgx" or "sqlite3")
//	-f output directory for generated documents
//	-c/-config json file path with configs
//	-access-token API access token
//	-rate-limit-per-day per-IP daily pipeline run quota
//	-cors-origins comma-separated browser origins allowed to call the API
//	-openai-base-url upstream chat completions base URL
//	-openai-api-key upstream API key
//	-model model for analysis generation
//	-draft-model model for request/email drafting
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-upstream-timeout upstream request timeout (e.g., "60s", "2m")
//	-cleanup-interval retention worker scan interval
//	-document-max-age retention max age for generated documents
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var outputDir string
	var jsonConfigPath string
	var accessToken string
	var rateLimitPerDay int
	var corsOrigins string
	var openAIBaseURL string
	var openAIAPIKey string
	var model string
	var draftModel string
	var requestTimeout time.Duration
	var upstreamTimeout time.Duration
	var cleanupInterval time.Duration
	var documentMaxAge time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx or sqlite3)")
	flag.StringVar(&outputDir, "f", "", "Output directory for generated documents")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&accessToken, "access-token", "", "API access token")
	flag.IntVar(&rateLimitPerDay, "rate-limit-per-day", 0, "Per-IP daily run quota")
	flag.StringVar(&corsOrigins, "cors-origins", "", "Comma-separated CORS allowed origins")
	flag.StringVar(&openAIBaseURL, "openai-base-url", "", "Upstream chat completions base URL")
	flag.StringVar(&openAIAPIKey, "openai-api-key", "", "Upstream API key")
	flag.StringVar(&model, "model", "", "Model for analysis generation")
	flag.StringVar(&draftModel, "draft-model", "", "Model for request/email drafting")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&upstreamTimeout, "upstream-timeout", 0, "Upstream request timeout (e.g., 60s, 2m)")
	flag.DurationVar(&cleanupInterval, "cleanup-interval", 0, "Retention worker scan interval")
	flag.DurationVar(&documentMaxAge, "document-max-age", 0, "Retention max age for generated documents")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AccessToken:     accessToken,
			RateLimitPerDay: rateLimitPerDay,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Files: Files{
				OutputDir: outputDir,
			},
		},
		Server: Server{
			HTTPAddress:        serverAddress.String(),
			RequestTimeout:     requestTimeout,
			CORSAllowedOrigins: splitCommaList(corsOrigins),
		},
		Adapter: Adapter{
			OpenAIBaseURL:  openAIBaseURL,
			OpenAIAPIKey:   openAIAPIKey,
			Model:          model,
			DraftModel:     draftModel,
			RequestTimeout: upstreamTimeout,
		},
		Workers: Workers{
			CleanupInterval: cleanupInterval,
			DocumentMaxAge:  documentMaxAge,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// splitCommaList turns a comma-separated flag value into a slice, trimming
// whitespace and dropping empty entries. It returns nil for an empty value so
// the flag layer does not shadow origins set by JSON or environment sources.
func splitCommaList(s string) []string {
	if s == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
