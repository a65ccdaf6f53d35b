package models

// HealthResponse is the liveness report returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`

	// UpstreamConfigured reports whether an API key for the completion
	// upstream is present; without it pipeline runs fail fast.
	UpstreamConfigured bool `json:"upstream_configured"`
}
