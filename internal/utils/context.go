// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, CSV and archive
// parsing, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClientIPCtxKey is the key used to store the caller's remote IP in the
// context. Used together with GetClientIPFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ClientIPCtxKey, "203.0.113.7")
var ClientIPCtxKey = contextKey("clientIP")

// TraceIDCtxKey is the key used to store the per-request trace identifier in
// the context.
var TraceIDCtxKey = contextKey("traceID")

// GetClientIPFromContext retrieves the caller's remote IP from the context.
//
// Returns the IP string and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
func GetClientIPFromContext(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(ClientIPCtxKey).(string)
	return ip, ok
}

// GetTraceIDFromContext retrieves the request trace identifier from the
// context. Returns the trace ID and an ok flag analogous to
// GetClientIPFromContext.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}
