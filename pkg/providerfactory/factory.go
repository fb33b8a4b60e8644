// Package providerfactory creates provider adapters from configuration.
// It is the single place that maps a provider type to its adapter
// implementation, so callers never branch on provider type themselves.
package providerfactory

import (
	"fmt"
	"log/slog"

	"mercator-hq/ganymede/pkg/providers"
	"mercator-hq/ganymede/pkg/providers/anthropic"
	"mercator-hq/ganymede/pkg/providers/friendli"
	"mercator-hq/ganymede/pkg/providers/generic"
	"mercator-hq/ganymede/pkg/providers/openai"
)

// NewProvider creates a new provider instance based on the configuration.
//
// Supported provider types:
//   - "openai": OpenAI API
//   - "friendli": FriendliAI serverless endpoints (OpenAI-compatible)
//   - "anthropic": Anthropic Messages API
//   - "generic": other OpenAI-compatible APIs (Ollama, LM Studio, vLLM, etc.)
//
// The provider type is determined from config.Type. If not specified, it is
// inferred from the provider name; unknown names default to generic.
func NewProvider(config providers.ProviderConfig) (providers.Provider, error) {
	providerType := config.Type
	if providerType == "" {
		providerType = inferProviderType(config.Name)
		config.Type = providerType
	}

	slog.Debug("creating provider",
		"name", config.Name,
		"type", providerType,
		"base_url", config.BaseURL,
	)

	var provider providers.Provider
	var err error

	switch providerType {
	case "openai":
		provider, err = openai.NewProvider(config)

	case "friendli":
		provider, err = friendli.NewProvider(config)

	case "anthropic":
		provider, err = anthropic.NewProvider(config)

	case "generic":
		provider, err = generic.NewProvider(config)

	default:
		return nil, &providers.ConfigError{
			Provider: config.Name,
			Field:    "type",
			Message:  fmt.Sprintf("unsupported provider type: %q (supported: openai, friendli, anthropic, generic)", providerType),
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create provider %q: %w", config.Name, err)
	}

	slog.Info("provider created successfully",
		"name", config.Name,
		"type", providerType,
	)

	return provider, nil
}

// inferProviderType infers the provider type from the provider name.
func inferProviderType(name string) string {
	switch name {
	case "openai":
		return "openai"
	case "friendli":
		return "friendli"
	case "anthropic":
		return "anthropic"
	default:
		return "generic"
	}
}
