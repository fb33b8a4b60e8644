package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"mercator-hq/ganymede/pkg/benchmark"
)

func testSummary() benchmark.Summary {
	return benchmark.Summary{
		RunID:  "run-1",
		Prompt: "hello",
		Winner: "m1",
		Results: []benchmark.ResultSummary{
			{ModelID: "m1", Provider: "friendli", Succeeded: true, LatencyMS: 320, TokensEstimate: 42, EstimatedCostUSD: 0.0012},
			{ModelID: "org/m2", Provider: "openai", Succeeded: true, LatencyMS: 800, TokensEstimate: 90, EstimatedCostUSD: 0.004},
			{ModelID: "m3", Provider: "anthropic", Succeeded: false},
		},
	}
}

func scrape(t *testing.T, r *Recorder) string {
	t.Helper()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	body, err := io.ReadAll(rec.Result().Body)
	if err != nil {
		t.Fatalf("reading metrics body: %v", err)
	}
	return string(body)
}

func TestRecorderRecord(t *testing.T) {
	r := NewRecorder(Config{Enabled: true}, prometheus.NewRegistry())
	r.Record(testSummary())

	body := scrape(t, r)

	checks := []string{
		`ganymede_benchmark_runs_total 1`,
		`ganymede_benchmark_cost_usd_total{model_id="m1",provider="friendli"}`,
		`ganymede_benchmark_wins_total{model_id="m1",provider="friendli"} 1`,
		`ganymede_benchmark_failures_total{model_id="m3",provider="anthropic"} 1`,
	}
	for _, want := range checks {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestRecorderSanitizesModelIDs(t *testing.T) {
	r := NewRecorder(Config{Enabled: true}, prometheus.NewRegistry())
	r.Record(testSummary())

	body := scrape(t, r)

	if !strings.Contains(body, `model_id="org_m2"`) {
		t.Error("slash in model id not sanitized")
	}
	if strings.Contains(body, `model_id="org/m2"`) {
		t.Error("raw slashed model id leaked into labels")
	}
}

func TestRecorderDisabled(t *testing.T) {
	r := NewRecorder(Config{Enabled: false}, prometheus.NewRegistry())
	r.Record(testSummary())

	if body := scrape(t, r); strings.Contains(body, "runs_total 1") {
		t.Error("disabled recorder still counted a run")
	}
}

func TestRecorderFailureSkipsObservations(t *testing.T) {
	r := NewRecorder(Config{Enabled: true}, prometheus.NewRegistry())
	r.Record(testSummary())

	body := scrape(t, r)

	if strings.Contains(body, `ganymede_benchmark_latency_ms_count{model_id="m3"`) {
		t.Error("failed call produced latency observations")
	}
	if !strings.Contains(body, `ganymede_benchmark_latency_ms_count{model_id="m1",provider="friendli"} 1`) {
		t.Error("successful call missing latency observation")
	}
}

func TestRecorderCustomNamespace(t *testing.T) {
	r := NewRecorder(Config{Enabled: true, Namespace: "custom"}, prometheus.NewRegistry())
	r.Record(testSummary())

	if body := scrape(t, r); !strings.Contains(body, "custom_benchmark_runs_total") {
		t.Error("namespace override not applied")
	}
}
