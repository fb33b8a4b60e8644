package benchmark

import "fmt"

// Composite score weights. Latency dominates slightly because the benchmark's
// primary question is "which model answers fastest for acceptable cost and
// quality"; the split is a documented policy, not a tunable.
const (
	latencyWeight = 0.4
	costWeight    = 0.3
	qualityWeight = 0.3
)

// neutralQuality is the quality component used when a result has no score,
// so a failed scorer neither rewards nor punishes the model.
const neutralQuality = 0.5

// NoWinnerReason is returned when every requested model failed.
const NoWinnerReason = "no model produced a successful result"

// SelectWinner picks the winning model_id among the successful results.
//
// Policy: each successful result gets a composite score
//
//	0.4*latencyScore + 0.3*costScore + 0.3*qualityScore
//
// where latencyScore is minLatency/latency (1.0 for the fastest result),
// costScore is minCost/cost (1.0 for the cheapest; a zero-cost result scores
// 1.0), and qualityScore is quality/10, or 0.5 when no score is present.
// The highest composite wins; ties break on lower latency, then on the
// lexically smallest model_id. The function is pure and deterministic, and
// its outcome does not depend on result order.
//
// Failure-branch results never participate. With no successful result the
// returned id is empty and the reason says so; a single successful result
// always wins regardless of its metrics.
func SelectWinner(results []Result) (string, string) {
	var successes []Result
	for _, r := range results {
		if r.Succeeded() {
			successes = append(successes, r)
		}
	}

	if len(successes) == 0 {
		return "", NoWinnerReason
	}
	if len(successes) == 1 {
		return successes[0].ModelID, "only successful result"
	}

	minLatency := successes[0].LatencyMS
	minCost := successes[0].EstimatedCostUSD
	for _, r := range successes[1:] {
		if r.LatencyMS < minLatency {
			minLatency = r.LatencyMS
		}
		if r.EstimatedCostUSD < minCost {
			minCost = r.EstimatedCostUSD
		}
	}

	best := successes[0]
	bestScore := compositeScore(successes[0], minLatency, minCost)
	for _, r := range successes[1:] {
		score := compositeScore(r, minLatency, minCost)
		if score > bestScore || (score == bestScore && beatsOnTie(r, best)) {
			best = r
			bestScore = score
		}
	}

	reason := fmt.Sprintf(
		"best composite of latency, cost, and quality (score %.3f; weights %.1f/%.1f/%.1f)",
		bestScore, latencyWeight, costWeight, qualityWeight,
	)
	return best.ModelID, reason
}

// compositeScore computes the weighted score for one successful result.
func compositeScore(r Result, minLatency, minCost float64) float64 {
	latencyScore := ratioScore(minLatency, r.LatencyMS)
	costScore := ratioScore(minCost, r.EstimatedCostUSD)

	qualityScore := neutralQuality
	if r.QualityScore != nil {
		qualityScore = *r.QualityScore / 10.0
	}

	return latencyWeight*latencyScore + costWeight*costScore + qualityWeight*qualityScore
}

// ratioScore maps a value onto (0, 1] relative to the best (lowest) value:
// the best value scores 1.0 and worse values decay proportionally. A zero
// value is the best possible and scores 1.0.
func ratioScore(min, value float64) float64 {
	if value <= 0 {
		return 1.0
	}
	return min / value
}

// beatsOnTie breaks composite-score ties: lower latency first, then the
// lexically smaller model_id.
func beatsOnTie(a, b Result) bool {
	if a.LatencyMS != b.LatencyMS {
		return a.LatencyMS < b.LatencyMS
	}
	return a.ModelID < b.ModelID
}
