package benchmark

import (
	"testing"

	"mercator-hq/ganymede/pkg/catalog"
)

func successWith(id string, latencyMS, costUSD float64, quality *float64) Result {
	spec := catalog.ModelSpec{ID: id, Label: id, Provider: "test"}
	return SuccessResult(spec, "output", latencyMS, 100, costUSD, quality)
}

func failureOf(id string) Result {
	spec := catalog.ModelSpec{ID: id, Label: id, Provider: "test"}
	return FailureResult(spec, "upstream error")
}

func scorePtr(v float64) *float64 { return &v }

func TestSelectWinnerAllFailed(t *testing.T) {
	results := []Result{failureOf("m1"), failureOf("m2")}

	winner, reason := SelectWinner(results)
	if winner != "" {
		t.Errorf("winner = %q, want empty", winner)
	}
	if reason != NoWinnerReason {
		t.Errorf("reason = %q, want %q", reason, NoWinnerReason)
	}
}

func TestSelectWinnerEmpty(t *testing.T) {
	winner, reason := SelectWinner(nil)
	if winner != "" || reason != NoWinnerReason {
		t.Errorf("SelectWinner(nil) = (%q, %q), want empty winner", winner, reason)
	}
}

func TestSelectWinnerSingleSuccess(t *testing.T) {
	// A lone success wins even with terrible metrics.
	results := []Result{
		failureOf("m1"),
		successWith("m2", 99999, 42.0, scorePtr(0.1)),
		failureOf("m3"),
	}

	winner, reason := SelectWinner(results)
	if winner != "m2" {
		t.Errorf("winner = %q, want m2", winner)
	}
	if reason != "only successful result" {
		t.Errorf("reason = %q", reason)
	}
}

func TestSelectWinnerFastestCheapestBest(t *testing.T) {
	// m1 dominates on every axis.
	results := []Result{
		successWith("m1", 100, 0.001, scorePtr(9)),
		successWith("m2", 500, 0.005, scorePtr(5)),
		successWith("m3", 900, 0.010, scorePtr(3)),
	}

	winner, _ := SelectWinner(results)
	if winner != "m1" {
		t.Errorf("winner = %q, want m1", winner)
	}
}

func TestSelectWinnerTradesQualityForLatency(t *testing.T) {
	// m2 is slower but much higher quality; with 0.4/0.3/0.3 weights the
	// quality edge cannot overcome a 10x latency gap alone, so check a
	// case where it can: same latency and cost, better quality wins.
	results := []Result{
		successWith("m1", 100, 0.001, scorePtr(4)),
		successWith("m2", 100, 0.001, scorePtr(9)),
	}

	winner, _ := SelectWinner(results)
	if winner != "m2" {
		t.Errorf("winner = %q, want m2", winner)
	}
}

func TestSelectWinnerMissingQualityIsNeutral(t *testing.T) {
	// Unscored results take a neutral 0.5 quality component: better than a
	// low score, worse than a high one.
	lowQuality := []Result{
		successWith("scored", 100, 0.001, scorePtr(2)),
		successWith("unscored", 100, 0.001, nil),
	}
	winner, _ := SelectWinner(lowQuality)
	if winner != "unscored" {
		t.Errorf("winner = %q, want unscored over low-scored", winner)
	}

	highQuality := []Result{
		successWith("scored", 100, 0.001, scorePtr(9)),
		successWith("unscored", 100, 0.001, nil),
	}
	winner, _ = SelectWinner(highQuality)
	if winner != "scored" {
		t.Errorf("winner = %q, want high-scored over unscored", winner)
	}
}

func TestSelectWinnerTieBreaksOnLatencyThenID(t *testing.T) {
	// Identical composites, different latency: lower latency wins.
	// Latency differences change the composite, so construct an exact tie:
	// identical metrics, ids differ.
	tied := []Result{
		successWith("zeta", 100, 0.001, scorePtr(7)),
		successWith("alpha", 100, 0.001, scorePtr(7)),
	}

	winner, _ := SelectWinner(tied)
	if winner != "alpha" {
		t.Errorf("winner = %q, want alpha (lexical tie-break)", winner)
	}
}

func TestSelectWinnerOrderIndependent(t *testing.T) {
	base := []Result{
		successWith("m1", 120, 0.002, scorePtr(6)),
		successWith("m2", 90, 0.004, scorePtr(7)),
		successWith("m3", 300, 0.001, scorePtr(8)),
		failureOf("m4"),
	}

	want, _ := SelectWinner(base)

	permutations := [][]int{
		{3, 2, 1, 0},
		{1, 3, 0, 2},
		{2, 0, 3, 1},
	}
	for _, perm := range permutations {
		shuffled := make([]Result, len(base))
		for i, j := range perm {
			shuffled[i] = base[j]
		}
		got, _ := SelectWinner(shuffled)
		if got != want {
			t.Errorf("winner depends on order: got %q, want %q", got, want)
		}
	}
}

func TestSelectWinnerZeroCost(t *testing.T) {
	// A free result must not divide by zero and should win the cost axis.
	results := []Result{
		successWith("free", 100, 0, scorePtr(5)),
		successWith("paid", 100, 0.002, scorePtr(5)),
	}

	winner, _ := SelectWinner(results)
	if winner != "free" {
		t.Errorf("winner = %q, want free", winner)
	}
}
