package adapter

import "errors"

var (
	ErrUpstreamNotConfigured = errors.New("upstream service is not configured")
	ErrEmptyCompletion       = errors.New("upstream returned an empty completion")
)
