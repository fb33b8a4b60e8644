// Package costs calculates estimated request costs in USD from token counts
// and per-provider pricing.
//
// Pricing is a flat price-per-1000-tokens figure per provider, loaded from
// configuration with built-in defaults, and optionally overridden per catalog
// entry. The Calculator is thread-safe and supports hot-reload of the pricing
// table while requests are in flight.
package costs
