package http

import "errors"

var (
	// ErrDuplicateRouteRegistration is returned by Init when two operation
	// descriptors share a (method, path) pair. The process must not start
	// serving with an ambiguous route table.
	ErrDuplicateRouteRegistration = errors.New("duplicate route registration")

	// ErrStreamingUnsupported is reported when the response writer cannot
	// flush, which Server-Sent Events require.
	ErrStreamingUnsupported = errors.New("response writer does not support streaming")
)
