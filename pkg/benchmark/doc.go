// Package benchmark orchestrates side-by-side benchmark runs across multiple
// LLM providers.
//
// Given a prompt and a list of catalog model ids, the Orchestrator fans out
// one goroutine per model, times each provider call, enriches successful
// results with token/cost estimates and a best-effort quality score, and
// gathers everything into a single response in input order. One model's
// failure never aborts its siblings; it simply becomes a failure-branch
// Result in the response.
//
// Winner selection is a pure, deterministic function over the collected
// results (see SelectWinner for the documented policy).
package benchmark
