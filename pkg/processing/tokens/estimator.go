package tokens

import "math"

// CharsPerToken is the fixed characters-per-token ratio of the estimate.
// Roughly right for English prose across the supported providers.
const CharsPerToken = 4.0

// Estimate returns the estimated token count for a prompt/output pair,
// computed as ceil((promptLen + outputLen) / 4.0).
//
// Negative lengths are clamped to zero; the result is never negative.
func Estimate(promptLen, outputLen int) int {
	if promptLen < 0 {
		promptLen = 0
	}
	if outputLen < 0 {
		outputLen = 0
	}

	return int(math.Ceil(float64(promptLen+outputLen) / CharsPerToken))
}

// EstimateText returns the estimated token count for a prompt/output text
// pair. Lengths are byte lengths, matching the heuristic's calibration.
func EstimateText(prompt, output string) int {
	return Estimate(len(prompt), len(output))
}
