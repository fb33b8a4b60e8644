package benchmark

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"mercator-hq/ganymede/pkg/catalog"
	"mercator-hq/ganymede/pkg/processing/costs"
)

type fakeCall struct {
	text  string
	err   error
	delay time.Duration
}

// fakeInvoker replays canned per-model outcomes and counts calls.
type fakeInvoker struct {
	mu        sync.Mutex
	callCount int
	responses map[string]fakeCall
}

func (f *fakeInvoker) Invoke(ctx context.Context, spec catalog.ModelSpec, prompt string) (string, error) {
	f.mu.Lock()
	f.callCount++
	call := f.responses[spec.ID]
	f.mu.Unlock()

	if call.delay > 0 {
		select {
		case <-time.After(call.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return call.text, call.err
}

func (f *fakeInvoker) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callCount
}

type errScorer struct{}

func (errScorer) Score(_ context.Context, _, _ string) (float64, error) {
	return 0, errors.New("judge unavailable")
}

type fixedScorer struct{ score float64 }

func (s fixedScorer) Score(_ context.Context, _, _ string) (float64, error) {
	return s.score, nil
}

// chanSink forwards summaries to a channel for inspection.
type chanSink struct{ ch chan Summary }

func (s chanSink) Record(summary Summary) { s.ch <- summary }

// panicSink panics on every record.
type panicSink struct{}

func (panicSink) Record(Summary) { panic("sink exploded") }

func testCatalog(t *testing.T, ids ...string) *catalog.Catalog {
	t.Helper()
	specs := make([]catalog.ModelSpec, len(ids))
	for i, id := range ids {
		specs[i] = catalog.ModelSpec{ID: id, Provider: "test"}
	}
	cat, err := catalog.New(specs)
	if err != nil {
		t.Fatalf("catalog.New failed: %v", err)
	}
	return cat
}

func TestRunResultsMatchRequestOrder(t *testing.T) {
	cat := testCatalog(t, "m1", "m2", "m3")
	invoker := &fakeInvoker{responses: map[string]fakeCall{
		"m1": {text: "first", delay: 30 * time.Millisecond},
		"m2": {text: "second"},
		"m3": {text: "third", delay: 10 * time.Millisecond},
	}}
	o := NewOrchestrator(cat, invoker, costs.NewCalculator(nil))

	resp, err := o.Run(context.Background(), &Request{
		Prompt:   "hello",
		ModelIDs: []string{"m3", "m1", "m2"},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(resp.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(resp.Results))
	}
	for i, want := range []string{"m3", "m1", "m2"} {
		if resp.Results[i].ModelID != want {
			t.Errorf("Results[%d].ModelID = %q, want %q", i, resp.Results[i].ModelID, want)
		}
	}
	if resp.Prompt != "hello" {
		t.Errorf("Prompt = %q, want %q", resp.Prompt, "hello")
	}
	if resp.RunID == "" {
		t.Error("RunID is empty")
	}
}

func TestRunPartialFailure(t *testing.T) {
	cat := testCatalog(t, "m1", "m2")
	invoker := &fakeInvoker{responses: map[string]fakeCall{
		"m1": {text: "a perfectly fine answer"},
		"m2": {err: errors.New("upstream timeout")},
	}}
	o := NewOrchestrator(cat, invoker, costs.NewCalculator(nil))

	resp, err := o.Run(context.Background(), &Request{
		Prompt:   "hello",
		ModelIDs: []string{"m1", "m2"},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !resp.Results[0].Succeeded() {
		t.Errorf("m1 should have succeeded: %+v", resp.Results[0])
	}
	if resp.Results[0].TokensEstimate == 0 {
		t.Error("m1 token estimate should be non-zero")
	}
	if resp.Results[1].Succeeded() {
		t.Error("m2 should have failed")
	}
	if !strings.Contains(resp.Results[1].Error, "upstream timeout") {
		t.Errorf("m2 error = %q, want it to mention the upstream timeout", resp.Results[1].Error)
	}

	if resp.Winner == nil || *resp.Winner != "m1" {
		t.Errorf("Winner = %v, want m1", resp.Winner)
	}
	if resp.WinnerReason != "only successful result" {
		t.Errorf("WinnerReason = %q", resp.WinnerReason)
	}
}

func TestRunAllFailed(t *testing.T) {
	cat := testCatalog(t, "m1", "m2")
	invoker := &fakeInvoker{responses: map[string]fakeCall{
		"m1": {err: errors.New("boom")},
		"m2": {err: errors.New("bang")},
	}}
	o := NewOrchestrator(cat, invoker, costs.NewCalculator(nil))

	resp, err := o.Run(context.Background(), &Request{
		Prompt:   "hello",
		ModelIDs: []string{"m1", "m2"},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if resp.Winner != nil {
		t.Errorf("Winner = %v, want nil", *resp.Winner)
	}
	if resp.WinnerReason != NoWinnerReason {
		t.Errorf("WinnerReason = %q, want %q", resp.WinnerReason, NoWinnerReason)
	}
}

func TestRunValidation(t *testing.T) {
	cat := testCatalog(t, "m1")

	tests := []struct {
		name    string
		req     *Request
		message string
	}{
		{
			name:    "empty prompt",
			req:     &Request{Prompt: "   ", ModelIDs: []string{"m1"}},
			message: "prompt cannot be empty",
		},
		{
			name:    "no models",
			req:     &Request{Prompt: "hello"},
			message: "at least one model must be selected",
		},
		{
			name:    "unknown model",
			req:     &Request{Prompt: "hello", ModelIDs: []string{"m1", "nope"}},
			message: "unknown model id: nope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoker := &fakeInvoker{responses: map[string]fakeCall{"m1": {text: "x"}}}
			o := NewOrchestrator(cat, invoker, costs.NewCalculator(nil))

			_, err := o.Run(context.Background(), tt.req)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if verr.Message != tt.message {
				t.Errorf("message = %q, want %q", verr.Message, tt.message)
			}
			if invoker.calls() != 0 {
				t.Errorf("invoker called %d times before validation, want 0", invoker.calls())
			}
		})
	}
}

func TestRunScorerFailureDegradesToNoScore(t *testing.T) {
	cat := testCatalog(t, "m1")
	invoker := &fakeInvoker{responses: map[string]fakeCall{"m1": {text: "answer"}}}
	o := NewOrchestrator(cat, invoker, costs.NewCalculator(nil), WithScorer(errScorer{}))

	resp, err := o.Run(context.Background(), &Request{Prompt: "hi", ModelIDs: []string{"m1"}})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	r := resp.Results[0]
	if !r.Succeeded() {
		t.Fatalf("result should succeed despite scorer failure: %+v", r)
	}
	if r.QualityScore != nil {
		t.Errorf("QualityScore = %v, want nil", *r.QualityScore)
	}
}

func TestRunScorerAttachesScore(t *testing.T) {
	cat := testCatalog(t, "m1")
	invoker := &fakeInvoker{responses: map[string]fakeCall{"m1": {text: "answer"}}}
	o := NewOrchestrator(cat, invoker, costs.NewCalculator(nil), WithScorer(fixedScorer{score: 8.5}))

	resp, err := o.Run(context.Background(), &Request{Prompt: "hi", ModelIDs: []string{"m1"}})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	r := resp.Results[0]
	if r.QualityScore == nil || *r.QualityScore != 8.5 {
		t.Errorf("QualityScore = %v, want 8.5", r.QualityScore)
	}
}

func TestRunForwardsSummaryToSink(t *testing.T) {
	cat := testCatalog(t, "m1", "m2")
	invoker := &fakeInvoker{responses: map[string]fakeCall{
		"m1": {text: "ok"},
		"m2": {err: errors.New("down")},
	}}
	sink := chanSink{ch: make(chan Summary, 1)}
	o := NewOrchestrator(cat, invoker, costs.NewCalculator(nil), WithSink(sink))

	resp, err := o.Run(context.Background(), &Request{Prompt: "hi", ModelIDs: []string{"m1", "m2"}})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	select {
	case summary := <-sink.ch:
		if summary.RunID != resp.RunID {
			t.Errorf("summary RunID = %q, want %q", summary.RunID, resp.RunID)
		}
		if summary.Winner != "m1" {
			t.Errorf("summary Winner = %q, want m1", summary.Winner)
		}
		if len(summary.Results) != 2 {
			t.Fatalf("summary has %d results, want 2", len(summary.Results))
		}
		if !summary.Results[0].Succeeded || summary.Results[1].Succeeded {
			t.Errorf("summary success flags wrong: %+v", summary.Results)
		}
	case <-time.After(time.Second):
		t.Fatal("sink never received the summary")
	}
}

func TestRunSurvivesPanickingSink(t *testing.T) {
	cat := testCatalog(t, "m1")
	invoker := &fakeInvoker{responses: map[string]fakeCall{"m1": {text: "ok"}}}
	o := NewOrchestrator(cat, invoker, costs.NewCalculator(nil), WithSink(panicSink{}))

	resp, err := o.Run(context.Background(), &Request{Prompt: "hi", ModelIDs: []string{"m1"}})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if resp.Winner == nil {
		t.Error("Winner should be set")
	}

	// Give the sink goroutine a moment; its panic must not crash the test
	// process.
	time.Sleep(20 * time.Millisecond)
}

func TestRunFansOutConcurrently(t *testing.T) {
	cat := testCatalog(t, "m1", "m2", "m3")
	delay := 60 * time.Millisecond
	invoker := &fakeInvoker{responses: map[string]fakeCall{
		"m1": {text: "a", delay: delay},
		"m2": {text: "b", delay: delay},
		"m3": {text: "c", delay: delay},
	}}
	o := NewOrchestrator(cat, invoker, costs.NewCalculator(nil))

	start := time.Now()
	_, err := o.Run(context.Background(), &Request{Prompt: "hi", ModelIDs: []string{"m1", "m2", "m3"}})
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Sequential execution would take at least 3x the delay.
	if elapsed > 2*delay {
		t.Errorf("run took %v, want parallel fan-out well under %v", elapsed, 3*delay)
	}
}

func TestRunCallTimeout(t *testing.T) {
	cat := testCatalog(t, "slow", "fast")
	invoker := &fakeInvoker{responses: map[string]fakeCall{
		"slow": {text: "never", delay: 500 * time.Millisecond},
		"fast": {text: "quick"},
	}}
	o := NewOrchestrator(cat, invoker, costs.NewCalculator(nil),
		WithCallTimeout(50*time.Millisecond))

	resp, err := o.Run(context.Background(), &Request{Prompt: "hi", ModelIDs: []string{"slow", "fast"}})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if resp.Results[0].Succeeded() {
		t.Error("slow model should have timed out")
	}
	if !resp.Results[1].Succeeded() {
		t.Errorf("fast model should have succeeded: %+v", resp.Results[1])
	}
	if resp.Winner == nil || *resp.Winner != "fast" {
		t.Errorf("Winner = %v, want fast", resp.Winner)
	}
}
