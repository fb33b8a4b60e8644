package benchmark

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"mercator-hq/ganymede/pkg/catalog"
	"mercator-hq/ganymede/pkg/processing/costs"
	"mercator-hq/ganymede/pkg/processing/tokens"
	"mercator-hq/ganymede/pkg/quality"
)

// Orchestrator coordinates benchmark runs: validation, per-model fan-out,
// metric enrichment, winner selection, and sink forwarding.
type Orchestrator struct {
	catalog *catalog.Catalog
	invoker Invoker
	costs   *costs.Calculator

	// scorer is nil when quality scoring is disabled.
	scorer quality.Scorer

	// sink is nil when no summary sink is configured.
	sink Sink

	// callTimeout bounds each provider call (primary and judge).
	// Zero means no bound beyond the adapters' own HTTP timeouts.
	callTimeout time.Duration
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithScorer enables best-effort quality scoring.
func WithScorer(scorer quality.Scorer) Option {
	return func(o *Orchestrator) { o.scorer = scorer }
}

// WithSink forwards run summaries to a sink, fire-and-forget.
func WithSink(sink Sink) Option {
	return func(o *Orchestrator) { o.sink = sink }
}

// WithCallTimeout bounds each per-model provider call.
func WithCallTimeout(timeout time.Duration) Option {
	return func(o *Orchestrator) { o.callTimeout = timeout }
}

// NewOrchestrator creates an orchestrator over a catalog, an invoker, and a
// cost calculator.
func NewOrchestrator(cat *catalog.Catalog, invoker Invoker, calc *costs.Calculator, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		catalog: cat,
		invoker: invoker,
		costs:   calc,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes one benchmark run.
//
// Request-level validation failures (empty prompt, empty model list, unknown
// model id) are returned as *ValidationError before any provider call is
// dispatched. Individual model failures never produce an error: they become
// failure-branch Results inside the returned Response.
func (o *Orchestrator) Run(ctx context.Context, req *Request) (*Response, error) {
	specs, err := o.validate(req)
	if err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	log := slog.With("run_id", runID)
	log.Info("benchmark run started",
		"models", len(specs),
		"prompt_len", len(req.Prompt),
	)

	// One goroutine per model; each writes only its own pre-assigned slot,
	// so the slice needs no locking and output order equals input order.
	results := make([]Result, len(specs))
	var wg sync.WaitGroup
	for i, spec := range specs {
		wg.Add(1)
		go func(i int, spec catalog.ModelSpec) {
			defer wg.Done()
			results[i] = o.runOne(ctx, spec, req.Prompt, log)
		}(i, spec)
	}
	wg.Wait()

	winnerID, reason := SelectWinner(results)
	resp := &Response{
		Prompt:       req.Prompt,
		RunID:        runID,
		Results:      results,
		WinnerReason: reason,
	}
	if winnerID != "" {
		resp.Winner = &winnerID
	}

	log.Info("benchmark run completed",
		"winner", winnerID,
		"reason", reason,
	)

	o.forwardSummary(resp, log)

	return resp, nil
}

// validate checks the request and resolves every model id against the
// catalog. It runs before any network call.
func (o *Orchestrator) validate(req *Request) ([]catalog.ModelSpec, error) {
	if req == nil || strings.TrimSpace(req.Prompt) == "" {
		return nil, &ValidationError{Message: "prompt cannot be empty"}
	}
	if len(req.ModelIDs) == 0 {
		return nil, &ValidationError{Message: "at least one model must be selected"}
	}

	specs := make([]catalog.ModelSpec, len(req.ModelIDs))
	for i, id := range req.ModelIDs {
		spec, ok := o.catalog.Get(id)
		if !ok {
			return nil, &ValidationError{Message: "unknown model id: " + id}
		}
		specs[i] = spec
	}

	return specs, nil
}

// runOne executes one benchmark unit: the timed provider call, then metric
// enrichment and best-effort quality scoring. Failures are captured into the
// returned Result and never escape to siblings.
func (o *Orchestrator) runOne(ctx context.Context, spec catalog.ModelSpec, prompt string, log *slog.Logger) Result {
	callCtx, cancel := o.boundCall(ctx)
	start := time.Now()
	text, err := o.invoker.Invoke(callCtx, spec, prompt)
	latencyMS := float64(time.Since(start)) / float64(time.Millisecond)
	cancel()

	if err != nil {
		log.Warn("model call failed",
			"model_id", spec.ID,
			"provider", spec.Provider,
			"error", err,
		)
		return FailureResult(spec, err.Error())
	}

	tokenCount := tokens.EstimateText(prompt, text)
	price := spec.PricePer1KTokensUSD
	if price == 0 {
		price = o.costs.PricePer1K(spec.Provider)
	}
	costUSD := costs.EstimateCost(tokenCount, price)

	// Quality scoring runs after the timer stops and degrades to "no score"
	// on any error.
	var qualityScore *float64
	if o.scorer != nil {
		scoreCtx, scoreCancel := o.boundCall(ctx)
		score, scoreErr := o.scorer.Score(scoreCtx, prompt, text)
		scoreCancel()
		if scoreErr != nil {
			log.Debug("quality scoring skipped",
				"model_id", spec.ID,
				"error", scoreErr,
			)
		} else {
			qualityScore = &score
		}
	}

	log.Debug("model call succeeded",
		"model_id", spec.ID,
		"provider", spec.Provider,
		"latency_ms", latencyMS,
		"tokens", tokenCount,
	)

	return SuccessResult(spec, text, latencyMS, tokenCount, costUSD, qualityScore)
}

// boundCall derives a per-call context honoring the configured timeout.
func (o *Orchestrator) boundCall(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.callTimeout > 0 {
		return context.WithTimeout(ctx, o.callTimeout)
	}
	return context.WithCancel(ctx)
}

// forwardSummary sends the run summary to the sink without blocking the
// response. Sink panics are swallowed; the sink can never fail a run.
func (o *Orchestrator) forwardSummary(resp *Response, log *slog.Logger) {
	if o.sink == nil {
		return
	}

	summary := NewSummary(resp)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Warn("summary sink panicked", "panic", r)
			}
		}()
		o.sink.Record(summary)
	}()
}
