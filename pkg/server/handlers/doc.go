// Package handlers provides the HTTP handlers for the Ganymede API.
//
// The API surface:
//
//   - GET /api/models: the benchmark model catalog in configured order
//   - POST /api/benchmark: run one prompt against selected models
//   - GET /health: liveness probe
//
// Validation failures return 400 with a {"detail": "..."} body; wrong methods
// return 405 with the same shape.
package handlers
