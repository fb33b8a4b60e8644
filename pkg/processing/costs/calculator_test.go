package costs

import (
	"math"
	"testing"
)

func TestEstimateCost(t *testing.T) {
	tests := []struct {
		name       string
		tokens     int
		pricePer1K float64
		want       float64
	}{
		{name: "1000 tokens at friendli price", tokens: 1000, pricePer1K: 0.0006, want: 0.0006},
		{name: "500 tokens at openai price", tokens: 500, pricePer1K: 0.0008, want: 0.0004},
		{name: "zero tokens", tokens: 0, pricePer1K: 0.0008, want: 0},
		{name: "zero price", tokens: 1000, pricePer1K: 0, want: 0},
		{name: "negative tokens", tokens: -10, pricePer1K: 0.0008, want: 0},
		{name: "negative price", tokens: 1000, pricePer1K: -0.5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateCost(tt.tokens, tt.pricePer1K)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("EstimateCost(%d, %v) = %v, want %v", tt.tokens, tt.pricePer1K, got, tt.want)
			}
		})
	}
}

func TestCalculatorDefaults(t *testing.T) {
	calc := NewCalculator(nil)

	if got := calc.PricePer1K("friendli"); got != DefaultFriendliPricePer1K {
		t.Errorf("friendli price = %v, want %v", got, DefaultFriendliPricePer1K)
	}
	if got := calc.PricePer1K("openai"); got != DefaultOpenAIPricePer1K {
		t.Errorf("openai price = %v, want %v", got, DefaultOpenAIPricePer1K)
	}
	if got := calc.PricePer1K("nonexistent"); got != 0 {
		t.Errorf("unknown provider price = %v, want 0", got)
	}
}

func TestCalculatorOverrides(t *testing.T) {
	calc := NewCalculator(map[string]float64{
		"openai":  0.002,
		"private": 0.0001,
	})

	if got := calc.PricePer1K("openai"); got != 0.002 {
		t.Errorf("overridden openai price = %v, want 0.002", got)
	}
	if got := calc.PricePer1K("private"); got != 0.0001 {
		t.Errorf("private provider price = %v, want 0.0001", got)
	}
	// Untouched defaults survive overrides.
	if got := calc.PricePer1K("friendli"); got != DefaultFriendliPricePer1K {
		t.Errorf("friendli price = %v, want default %v", got, DefaultFriendliPricePer1K)
	}
}

func TestCalculatorUpdatePricing(t *testing.T) {
	calc := NewCalculator(map[string]float64{"openai": 0.002})

	calc.UpdatePricing(map[string]float64{"friendli": 0.001})

	if got := calc.PricePer1K("friendli"); got != 0.001 {
		t.Errorf("friendli price after update = %v, want 0.001", got)
	}
	// UpdatePricing replaces the whole table, so the earlier openai
	// override reverts to the default.
	if got := calc.PricePer1K("openai"); got != DefaultOpenAIPricePer1K {
		t.Errorf("openai price after update = %v, want default %v", got, DefaultOpenAIPricePer1K)
	}
}

func TestCalculatorIgnoresNegativePrices(t *testing.T) {
	calc := NewCalculator(map[string]float64{"openai": -1})

	if got := calc.PricePer1K("openai"); got != DefaultOpenAIPricePer1K {
		t.Errorf("openai price = %v, want default %v", got, DefaultOpenAIPricePer1K)
	}
}
