package benchmark

import (
	"fmt"

	"mercator-hq/ganymede/pkg/catalog"
)

// Request is one benchmark run: a prompt fanned out to a set of models.
type Request struct {
	// Prompt is the text sent identically to every requested model.
	Prompt string `json:"prompt"`

	// ModelIDs are catalog ids; result order follows this order.
	ModelIDs []string `json:"model_ids"`
}

// Result is the per-model outcome of a benchmark run. It is a tagged variant:
// either the success branch (text and metrics) or the failure branch (error)
// is populated, never both. Use SuccessResult and FailureResult to construct
// it and Succeeded to branch on it.
type Result struct {
	// ModelID is the catalog id this result belongs to.
	ModelID string `json:"model_id"`

	// Label is the catalog display name.
	Label string `json:"label"`

	// Provider is the provider that served (or failed to serve) the call.
	Provider string `json:"provider"`

	// Success branch.

	// Text is the generated output.
	Text string `json:"text,omitempty"`

	// LatencyMS is the wall-clock duration of the provider call in
	// milliseconds, excluding quality scoring.
	LatencyMS float64 `json:"latency_ms"`

	// TokensEstimate is the estimated token usage (prompt + output).
	TokensEstimate int `json:"tokens_estimate"`

	// EstimatedCostUSD is the estimated cost of the call in USD.
	EstimatedCostUSD float64 `json:"estimated_cost_usd"`

	// QualityScore is the 0-10 quality rating, or nil when scoring was
	// skipped or failed.
	QualityScore *float64 `json:"quality_score,omitempty"`

	// Failure branch.

	// Error is the human-readable failure message, empty on success.
	Error string `json:"error,omitempty"`
}

// SuccessResult builds the success branch of a Result.
func SuccessResult(spec catalog.ModelSpec, text string, latencyMS float64, tokens int, costUSD float64, quality *float64) Result {
	return Result{
		ModelID:          spec.ID,
		Label:            spec.Label,
		Provider:         spec.Provider,
		Text:             text,
		LatencyMS:        latencyMS,
		TokensEstimate:   tokens,
		EstimatedCostUSD: costUSD,
		QualityScore:     quality,
	}
}

// FailureResult builds the failure branch of a Result.
func FailureResult(spec catalog.ModelSpec, errMsg string) Result {
	if errMsg == "" {
		errMsg = "unknown error"
	}
	return Result{
		ModelID:  spec.ID,
		Label:    spec.Label,
		Provider: spec.Provider,
		Error:    errMsg,
	}
}

// Succeeded reports whether the success branch is populated.
func (r Result) Succeeded() bool {
	return r.Error == ""
}

// Response is the aggregate outcome of a benchmark run.
type Response struct {
	// Prompt echoes the benchmarked prompt.
	Prompt string `json:"prompt"`

	// RunID uniquely identifies this run in logs and sink records.
	RunID string `json:"run_id"`

	// Results holds one Result per requested model, in request order.
	Results []Result `json:"results"`

	// Winner is the model_id of the selected result, or null when no model
	// succeeded.
	Winner *string `json:"winner"`

	// WinnerReason is a short justification for the selection.
	WinnerReason string `json:"winner_reason"`
}

// ValidationError is a request-level error: the request was rejected before
// any provider call was dispatched.
type ValidationError struct {
	// Message is the client-facing description of what is invalid.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Summary is the compact record forwarded to the sink after a run.
type Summary struct {
	// RunID identifies the benchmark run.
	RunID string `json:"run_id"`

	// Prompt is the benchmarked prompt.
	Prompt string `json:"prompt"`

	// Winner is the winning model_id, empty when no model succeeded.
	Winner string `json:"winner"`

	// Results holds one entry per requested model, in request order.
	Results []ResultSummary `json:"results"`
}

// ResultSummary is the per-model slice of a Summary.
type ResultSummary struct {
	ModelID          string  `json:"model_id"`
	Provider         string  `json:"provider"`
	Succeeded        bool    `json:"succeeded"`
	LatencyMS        float64 `json:"latency_ms"`
	TokensEstimate   int     `json:"tokens_estimate"`
	EstimatedCostUSD float64 `json:"estimated_cost_usd"`
}

// Sink receives benchmark summaries. Implementations must be fast and must
// never block the benchmark response; the orchestrator calls Record on a
// separate goroutine and ignores panics.
type Sink interface {
	Record(summary Summary)
}

// NewSummary derives the sink record from a response.
func NewSummary(resp *Response) Summary {
	s := Summary{
		RunID:   resp.RunID,
		Prompt:  resp.Prompt,
		Results: make([]ResultSummary, len(resp.Results)),
	}
	if resp.Winner != nil {
		s.Winner = *resp.Winner
	}

	for i, r := range resp.Results {
		s.Results[i] = ResultSummary{
			ModelID:          r.ModelID,
			Provider:         r.Provider,
			Succeeded:        r.Succeeded(),
			LatencyMS:        r.LatencyMS,
			TokensEstimate:   r.TokensEstimate,
			EstimatedCostUSD: r.EstimatedCostUSD,
		}
	}

	return s
}

// String implements fmt.Stringer for log-friendly output.
func (s Summary) String() string {
	return fmt.Sprintf("run %s: %d models, winner %q", s.RunID, len(s.Results), s.Winner)
}
