// Package server assembles the Ganymede HTTP server: routes, middleware
// chain, TLS, and graceful shutdown.
//
// Routes are registered on a standard net/http mux:
//
//   - /api/models and /api/benchmark (see pkg/server/handlers)
//   - /health for liveness probes
//   - the metrics endpoint when telemetry is enabled
//   - an optional static file root for a bundled front end
//
// The middleware chain wraps the mux with recovery, logging, request ID,
// CORS, and timeout handling (see pkg/server/middleware).
package server
