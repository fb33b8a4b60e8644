package providers

import "context"

// Provider is the interface all LLM provider adapters implement.
// It provides a unified abstraction for issuing one chat completion against
// heterogeneous provider APIs (OpenAI, FriendliAI, Anthropic, local models).
//
// All methods accept a context.Context for cancellation and timeout control.
// Implementations must respect context cancellation and return immediately
// when the context is cancelled.
//
// Example usage:
//
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    return err
//	}
//	defer provider.Close()
//
//	req := &CompletionRequest{
//	    Model: "gpt-4o-mini",
//	    Messages: []Message{
//	        {Role: RoleUser, Content: "Hello!"},
//	    },
//	}
//	resp, err := provider.SendCompletion(ctx, req)
type Provider interface {
	// SendCompletion sends a completion request to the provider and returns
	// the normalized response. The request is transformed to the
	// provider-specific format and the response is normalized back.
	//
	// Exactly one attempt is made; errors are returned as one of the typed
	// errors defined in this package.
	SendCompletion(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// GetName returns the provider's configured name (e.g., "openai").
	GetName() string

	// GetType returns the provider's type (openai, friendli, anthropic, generic).
	GetType() string

	// GetConfig returns the provider's configuration.
	GetConfig() ProviderConfig

	// Close releases the provider's resources (idle HTTP connections).
	// After calling Close, the provider should not be used.
	Close() error
}
