package costs

import "sync"

// Default price per 1000 tokens in USD, by provider.
// Values match the provider defaults the service shipped with; configuration
// overrides them per provider, and catalog entries may override per model.
const (
	DefaultFriendliPricePer1K  = 0.0006
	DefaultOpenAIPricePer1K    = 0.0008
	DefaultAnthropicPricePer1K = 0.0030
	DefaultGenericPricePer1K   = 0.0
)

// Calculator resolves per-provider pricing and computes estimated costs.
// It is thread-safe and supports hot-reload of the pricing table.
type Calculator struct {
	// pricing maps provider name to price per 1000 tokens in USD
	pricing map[string]float64

	// mu protects the pricing table for concurrent access
	mu sync.RWMutex
}

// DefaultPricing returns the built-in provider pricing table.
func DefaultPricing() map[string]float64 {
	return map[string]float64{
		"friendli":  DefaultFriendliPricePer1K,
		"openai":    DefaultOpenAIPricePer1K,
		"anthropic": DefaultAnthropicPricePer1K,
		"generic":   DefaultGenericPricePer1K,
	}
}

// NewCalculator creates a cost calculator. Entries in pricing override the
// built-in defaults; a nil map keeps the defaults unchanged.
func NewCalculator(pricing map[string]float64) *Calculator {
	table := DefaultPricing()
	for provider, price := range pricing {
		if price >= 0 {
			table[provider] = price
		}
	}
	return &Calculator{pricing: table}
}

// PricePer1K returns the price per 1000 tokens for a provider.
// Unknown providers cost nothing rather than failing the benchmark.
func (c *Calculator) PricePer1K(provider string) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if price, ok := c.pricing[provider]; ok {
		return price
	}
	return 0
}

// UpdatePricing replaces the pricing table (hot-reload support).
// This is thread-safe and can be called while the calculator is in use.
func (c *Calculator) UpdatePricing(pricing map[string]float64) {
	table := DefaultPricing()
	for provider, price := range pricing {
		if price >= 0 {
			table[provider] = price
		}
	}

	c.mu.Lock()
	c.pricing = table
	c.mu.Unlock()
}

// EstimateCost returns the estimated cost in USD for a token count at the
// given price per 1000 tokens: tokens / 1000 * pricePer1K.
// The result is never negative.
func EstimateCost(tokens int, pricePer1K float64) float64 {
	if tokens <= 0 || pricePer1K <= 0 {
		return 0.0
	}

	return (float64(tokens) / 1000.0) * pricePer1K
}
