package friendli

import (
	"context"
	"fmt"
	"log/slog"

	"mercator-hq/ganymede/pkg/providers"
	"mercator-hq/ganymede/pkg/providers/openai"
)

// DefaultBaseURL is the FriendliAI serverless endpoint base URL.
const DefaultBaseURL = "https://api.friendli.ai/serverless/v1"

// modelNames maps short catalog model ids to FriendliAI's org-qualified names.
// Unmapped ids are sent through unchanged so fully-qualified names keep working.
var modelNames = map[string]string{
	"glm-4.6":                   "zai-org/GLM-4.6",
	"llama-3.1-8b-instruct":     "meta-llama/Llama-3.1-8B-Instruct",
	"magistral-small-2506":      "mistralai/Magistral-Small-2506",
	"a.x-3.1":                   "skt/A.X-3.1",
	"qwen3-235b-thinking-2507":  "Qwen/Qwen3-235B-A22B-Thinking-2507",
	"qwen3-235b-instruct-2507":  "Qwen/Qwen3-235B-A22B-Instruct-2507",
	"llama-3.3-70b-instruct":    "meta-llama/Llama-3.3-70B-Instruct",
	"devstral-small-2505":       "mistralai/Devstral-Small-2505",
	"gemma-3-27b-it":            "google/gemma-3-27b-it",
	"qwen3-32b":                 "Qwen/Qwen3-32B",
}

// Provider is the FriendliAI provider adapter.
// It implements the providers.Provider interface against FriendliAI's
// OpenAI-compatible serverless API.
type Provider struct {
	*providers.HTTPProvider
}

// NewProvider creates a new FriendliAI provider instance.
func NewProvider(config providers.ProviderConfig) (*Provider, error) {
	if config.Name == "" {
		return nil, &providers.ConfigError{
			Provider: "friendli",
			Field:    "name",
			Message:  "provider name is required",
		}
	}

	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}

	if config.APIKey == "" {
		return nil, &providers.ConfigError{
			Provider: config.Name,
			Field:    "api_key",
			Message:  "API key is required for FriendliAI",
		}
	}

	if config.MaxIdleConns == 0 {
		config.MaxIdleConns = 100
	}
	if config.MaxIdleConnsPerHost == 0 {
		config.MaxIdleConnsPerHost = 10
	}

	p := &Provider{
		HTTPProvider: providers.NewHTTPProvider(config),
	}

	slog.Info("FriendliAI provider initialized",
		"provider", config.Name,
		"base_url", config.BaseURL,
	)

	return p, nil
}

// ResolveModel maps a short catalog model id to FriendliAI's full model name.
func ResolveModel(model string) string {
	if full, ok := modelNames[model]; ok {
		return full
	}
	return model
}

// SendCompletion sends a completion request to FriendliAI.
func (p *Provider) SendCompletion(ctx context.Context, req *providers.CompletionRequest) (*providers.CompletionResponse, error) {
	if req == nil {
		return nil, &providers.ValidationError{
			Field:   "request",
			Message: "request cannot be nil",
		}
	}
	if req.Model == "" {
		return nil, &providers.ValidationError{
			Field:   "model",
			Message: "model is required",
		}
	}
	if len(req.Messages) == 0 {
		return nil, &providers.ValidationError{
			Field:   "messages",
			Message: "at least one message is required",
		}
	}

	friendliReq := openai.TransformRequest(req)
	friendliReq.Model = ResolveModel(req.Model)

	url := fmt.Sprintf("%s/chat/completions", p.GetConfig().BaseURL)
	headers := map[string]string{
		"Authorization": "Bearer " + p.GetConfig().APIKey,
		"Content-Type":  "application/json",
	}

	var friendliResp openai.Response
	if err := p.DoJSONRequest(ctx, "POST", url, friendliReq, &friendliResp, headers); err != nil {
		return nil, err
	}

	resp, err := openai.TransformResponse(&friendliResp)
	if err != nil {
		return nil, &providers.ParseError{
			Provider: p.GetName(),
			Cause:    err,
		}
	}

	slog.Debug("completion request succeeded",
		"provider", p.GetName(),
		"model", resp.Model,
		"tokens", resp.Usage.TotalTokens,
	)

	return resp, nil
}
