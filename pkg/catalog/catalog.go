package catalog

import "fmt"

// ModelSpec describes one benchmarkable model: the short identifier clients
// use, the provider that serves it, and the upstream model name sent on the
// wire.
type ModelSpec struct {
	// ID is the short identifier used in benchmark requests (e.g.,
	// "llama-3.1-8b-instruct", "gpt-4o-mini").
	ID string

	// Label is a human-readable display name.
	Label string

	// Provider names the provider adapter serving this model.
	Provider string

	// Model is the upstream model name. When empty, the provider adapter
	// resolves it from ID.
	Model string

	// PricePer1KTokensUSD overrides the provider-level price for cost
	// estimates of this model. Zero means use the provider default.
	PricePer1KTokensUSD float64
}

// UpstreamModel returns the model name to send to the provider. It falls back
// to the short ID when no explicit upstream name is configured, leaving any
// further resolution to the provider adapter.
func (s ModelSpec) UpstreamModel() string {
	if s.Model != "" {
		return s.Model
	}
	return s.ID
}

// Catalog is an ordered, immutable collection of model specs indexed by ID.
// The declaration order is preserved in listings and API responses.
type Catalog struct {
	specs []ModelSpec
	byID  map[string]int
}

// New builds a catalog from the given specs. It rejects empty and duplicate
// IDs and negative prices. Labels default to the spec ID.
func New(specs []ModelSpec) (*Catalog, error) {
	c := &Catalog{
		specs: make([]ModelSpec, 0, len(specs)),
		byID:  make(map[string]int, len(specs)),
	}

	for i, spec := range specs {
		if spec.ID == "" {
			return nil, fmt.Errorf("model at index %d has an empty id", i)
		}
		if _, exists := c.byID[spec.ID]; exists {
			return nil, fmt.Errorf("duplicate model id %q", spec.ID)
		}
		if spec.PricePer1KTokensUSD < 0 {
			return nil, fmt.Errorf("model %q has a negative price", spec.ID)
		}
		if spec.Label == "" {
			spec.Label = spec.ID
		}

		c.byID[spec.ID] = len(c.specs)
		c.specs = append(c.specs, spec)
	}

	return c, nil
}

// Get returns the spec for the given model ID.
func (c *Catalog) Get(id string) (ModelSpec, bool) {
	i, ok := c.byID[id]
	if !ok {
		return ModelSpec{}, false
	}
	return c.specs[i], true
}

// List returns the specs in declaration order. The returned slice is a copy.
func (c *Catalog) List() []ModelSpec {
	out := make([]ModelSpec, len(c.specs))
	copy(out, c.specs)
	return out
}

// Len returns the number of models in the catalog.
func (c *Catalog) Len() int {
	return len(c.specs)
}
