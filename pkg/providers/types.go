package providers

import "time"

// Message represents a single message in a conversation.
// It is provider-agnostic and is transformed to provider-specific formats.
type Message struct {
	// Role identifies the message sender (system, user, assistant).
	Role string `json:"role"`

	// Content is the message text content.
	Content string `json:"content"`
}

// TokenUsage tracks token consumption reported by the provider, if any.
type TokenUsage struct {
	// PromptTokens is the number of tokens in the prompt.
	PromptTokens int `json:"prompt_tokens"`

	// CompletionTokens is the number of tokens in the completion.
	CompletionTokens int `json:"completion_tokens"`

	// TotalTokens is the total number of tokens used (prompt + completion).
	TotalTokens int `json:"total_tokens"`
}

// CompletionRequest represents a provider-agnostic completion request.
type CompletionRequest struct {
	// Model is the provider-side model identifier.
	Model string `json:"model"`

	// Messages is the conversation to complete.
	Messages []Message `json:"messages"`

	// Temperature controls randomness (0.0 to 2.0). Zero means provider default.
	Temperature float64 `json:"temperature,omitempty"`

	// MaxTokens caps the number of tokens to generate. Zero means no cap.
	MaxTokens int `json:"max_tokens,omitempty"`
}

// CompletionResponse represents a normalized completion response.
type CompletionResponse struct {
	// ID is the provider's response identifier.
	ID string `json:"id"`

	// Model is the model that generated the response.
	Model string `json:"model"`

	// Content is the generated text content.
	Content string `json:"content"`

	// FinishReason indicates why generation stopped (stop, length, ...).
	FinishReason string `json:"finish_reason"`

	// Usage contains raw token counts if the provider reported them.
	Usage TokenUsage `json:"usage"`

	// Created is the Unix timestamp when the response was created.
	Created int64 `json:"created"`
}

// ProviderConfig contains configuration for a single provider instance.
type ProviderConfig struct {
	// Name is the provider identifier (e.g., "openai", "friendli").
	Name string

	// Type is the provider type (openai, friendli, anthropic, generic).
	Type string

	// BaseURL is the API endpoint base URL.
	BaseURL string

	// APIKey is the authentication key.
	APIKey string

	// Timeout is the per-request timeout duration.
	Timeout time.Duration

	// MaxIdleConns is the maximum number of idle connections in the pool.
	MaxIdleConns int

	// MaxIdleConnsPerHost is the maximum idle connections per host.
	MaxIdleConnsPerHost int

	// IdleConnTimeout is how long an idle connection remains in the pool.
	IdleConnTimeout time.Duration
}

// Message role constants.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Finish reason constants.
const (
	FinishReasonStop   = "stop"
	FinishReasonLength = "length"
)
