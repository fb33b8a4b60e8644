// Package metrics exposes benchmark outcomes as Prometheus metrics.
//
// The Recorder implements the benchmark summary sink: after every run it
// updates per-model latency, token, cost, failure, and win metrics. Recording
// is fire-and-forget — the orchestrator never waits on it and a disabled or
// failing recorder never affects a benchmark response.
//
// Metrics (namespace_subsystem prefix, default "ganymede_benchmark"):
//
//   - runs_total: benchmark runs recorded
//   - latency_ms: per-model latency histogram (label: model_id, provider)
//   - tokens_estimate: per-model token estimate histogram
//   - cost_usd_total: accumulated estimated cost counter
//   - failures_total: failed model calls counter
//   - wins_total: winner selections counter
package metrics
