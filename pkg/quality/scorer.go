package quality

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"mercator-hq/ganymede/pkg/providers"
)

// Scorer rates a response against its prompt on a 0-10 continuous scale.
type Scorer interface {
	// Score returns a quality score in [0, 10] for response given prompt.
	// Errors mean "no score could be produced" and must be treated as a
	// degraded outcome by the caller, never a failure of the response itself.
	Score(ctx context.Context, prompt, response string) (float64, error)
}

// judgePromptTemplate asks the judge model for a bare numeric rating.
const judgePromptTemplate = `You are an expert evaluator of LLM responses. Evaluate the following response for quality.

Original Prompt:
%s

Response to Evaluate:
%s

Please evaluate this response on a scale of 1.0 to 10.0 based on:
1. Relevance: Does it directly address the prompt?
2. Completeness: Does it provide a thorough answer?
3. Accuracy: Is the information correct?
4. Clarity: Is it well-written and easy to understand?

Respond with ONLY a single number between 1.0 and 10.0 (e.g., "7.5"). Do not include any explanation or other text.`

// JudgeScorer rates responses by asking a judge LLM through a provider
// adapter. The judge call is independent of the primary benchmark call and
// does not count toward measured latency.
type JudgeScorer struct {
	provider providers.Provider
	model    string
}

// NewJudgeScorer creates a scorer backed by the given provider and model.
func NewJudgeScorer(provider providers.Provider, model string) *JudgeScorer {
	return &JudgeScorer{
		provider: provider,
		model:    model,
	}
}

// Score sends the evaluation prompt to the judge model and parses its reply.
func (s *JudgeScorer) Score(ctx context.Context, prompt, response string) (float64, error) {
	req := &providers.CompletionRequest{
		Model: s.model,
		Messages: []providers.Message{
			{Role: providers.RoleUser, Content: fmt.Sprintf(judgePromptTemplate, prompt, response)},
		},
		Temperature: 0.3,
		MaxTokens:   10,
	}

	resp, err := s.provider.SendCompletion(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("judge call failed: %w", err)
	}

	score, err := parseScore(resp.Content)
	if err != nil {
		return 0, err
	}

	slog.Debug("quality score produced",
		"judge_model", s.model,
		"score", score,
	)

	return score, nil
}

// parseScore extracts the numeric rating from the judge's reply and clamps
// it to [0, 10].
func parseScore(content string) (float64, error) {
	text := strings.TrimSpace(content)

	// Some judges reply "7.5/10" or "Score: 7.5" despite instructions.
	// Take the first whitespace-separated field that parses as a number.
	for _, field := range strings.Fields(text) {
		field = strings.TrimSuffix(strings.TrimRight(field, ".,"), "/10")
		if score, err := strconv.ParseFloat(field, 64); err == nil {
			return clamp(score, 0, 10), nil
		}
	}

	return 0, fmt.Errorf("malformed quality score: %q", content)
}

// HeuristicScorer approximates quality from response length relative to the
// prompt. It is the fallback when no judge model is configured.
type HeuristicScorer struct{}

// Score rates the response by length. Empty responses score 1.0; longer,
// more detailed responses score higher, capped at 10.
func (HeuristicScorer) Score(_ context.Context, prompt, response string) (float64, error) {
	if strings.TrimSpace(response) == "" {
		return 1.0, nil
	}

	promptLen := len(prompt)
	if promptLen < 10 {
		promptLen = 10
	}
	lengthRatio := float64(len(response)) / float64(promptLen)

	// Base 3.0-7.0 from the length ratio, with bonuses for detail.
	score := clamp(3.0+lengthRatio*2.0, 3.0, 7.0)
	if len(response) > 200 {
		score += 1.0
	}
	if len(response) > 500 {
		score += 1.0
	}

	return clamp(score, 1.0, 10.0), nil
}

// FallbackScorer tries a primary scorer and falls back to a secondary one
// when the primary fails. The typical composition is a JudgeScorer backed by
// a HeuristicScorer so transient judge outages still yield a score.
type FallbackScorer struct {
	Primary  Scorer
	Fallback Scorer
}

// Score returns the primary score when available, otherwise the fallback's.
func (s FallbackScorer) Score(ctx context.Context, prompt, response string) (float64, error) {
	score, err := s.Primary.Score(ctx, prompt, response)
	if err == nil {
		return score, nil
	}

	slog.Debug("primary scorer failed, using fallback", "error", err)
	return s.Fallback.Score(ctx, prompt, response)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
