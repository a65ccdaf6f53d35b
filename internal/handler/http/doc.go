// Package http implements the HTTP transport layer of the application.
// It owns the operation descriptor table, middleware (tracing, logging,
// API-key auth, rate limiting, timeouts, CORS), and the single place where
// service failures are translated into HTTP statuses. Handlers validate
// input, call a service, and shape the response; no business logic lives
// here.
package http
