package providers

import (
	"testing"
	"time"

	"mercator-hq/ganymede/pkg/providers"
)

// TestConfig returns a test provider configuration.
func TestConfig(name, providerType string) providers.ProviderConfig {
	return providers.ProviderConfig{
		Name:                name,
		Type:                providerType,
		BaseURL:             "http://localhost:8080",
		APIKey:              "test-key",
		Timeout:             5 * time.Second,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     30 * time.Second,
	}
}

// TestConfigWithURL returns a test config with a specific base URL.
func TestConfigWithURL(name, providerType, baseURL string) providers.ProviderConfig {
	config := TestConfig(name, providerType)
	config.BaseURL = baseURL
	return config
}

// TestMessage creates a test message.
func TestMessage(role, content string) providers.Message {
	return providers.Message{
		Role:    role,
		Content: content,
	}
}

// TestCompletionRequest creates a test completion request.
func TestCompletionRequest(model string, messages ...providers.Message) *providers.CompletionRequest {
	return &providers.CompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   100,
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
