package benchmark

import (
	"context"
	"fmt"

	"mercator-hq/ganymede/pkg/catalog"
	"mercator-hq/ganymede/pkg/providers"
)

// Invoker issues the primary inference call for one catalog model.
// The orchestrator times Invoke from the outside; implementations must not
// add their own delays beyond the network call itself.
type Invoker interface {
	Invoke(ctx context.Context, spec catalog.ModelSpec, prompt string) (string, error)
}

// ProviderInvoker dispatches to provider adapters by catalog provider name.
// It holds one reusable adapter per provider, shared read-only across
// concurrent benchmark units.
type ProviderInvoker struct {
	adapters map[string]providers.Provider
}

// NewProviderInvoker creates an invoker over a provider-name→adapter map.
func NewProviderInvoker(adapters map[string]providers.Provider) *ProviderInvoker {
	return &ProviderInvoker{adapters: adapters}
}

// Invoke sends the prompt to the model's provider and returns the text.
func (pi *ProviderInvoker) Invoke(ctx context.Context, spec catalog.ModelSpec, prompt string) (string, error) {
	adapter, ok := pi.adapters[spec.Provider]
	if !ok {
		return "", fmt.Errorf("provider %q is not configured", spec.Provider)
	}

	resp, err := adapter.SendCompletion(ctx, &providers.CompletionRequest{
		Model: spec.UpstreamModel(),
		Messages: []providers.Message{
			{Role: providers.RoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}

	return resp.Content, nil
}

// Close closes all adapters held by the invoker.
func (pi *ProviderInvoker) Close() error {
	var firstErr error
	for _, adapter := range pi.adapters {
		if err := adapter.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
