// Package middleware provides HTTP middleware for the Ganymede server.
//
// The middleware chain is applied in the following order (outermost first):
//
//  1. Recovery: catches panics and returns 500 responses
//  2. Logging: structured request/response logging via log/slog
//  3. RequestID: assigns or propagates X-Request-ID
//  4. CORS: cross-origin resource sharing headers
//  5. Timeout: per-request deadline enforcement
//
// Error responses produced by middleware use the same JSON shape as the API
// handlers: {"detail": "..."}.
package middleware
