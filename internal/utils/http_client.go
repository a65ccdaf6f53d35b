package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client for outbound calls to the language-model
// API. Embedding *resty.Client exposes the full resty surface; the adapter
// layers its own base URL, auth header and timeout on top.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a fresh HTTPClient with default resty settings.
// Each call yields an independent client with its own connection pool, so
// adapters do not share retry or header state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
