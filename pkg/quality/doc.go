// Package quality scores benchmark responses on a 0-10 scale.
//
// Scoring is strictly best-effort: the orchestrator treats any scorer error
// as "no score" and the rest of the result (text, latency, cost) stays valid.
// Two implementations are provided:
//
//   - JudgeScorer asks a judge LLM to rate the response against the original
//     prompt and parses the numeric reply.
//   - HeuristicScorer approximates quality from response length when no judge
//     is configured.
package quality
