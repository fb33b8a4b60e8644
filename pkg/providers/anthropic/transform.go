package anthropic

import (
	"fmt"

	"mercator-hq/ganymede/pkg/providers"
)

// Anthropic API request/response types

// Request represents an Anthropic Messages API request.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	System      string    `json:"system,omitempty"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature,omitempty"`
}

// Message represents a message in Anthropic format.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response represents an Anthropic Messages API response.
type Response struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Role       string         `json:"role"`
	Model      string         `json:"model"`
	Content    []ContentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Usage      Usage          `json:"usage"`
}

// ContentBlock is one block of response content.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Usage represents token usage in Anthropic format.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// DefaultMaxTokens is used when the caller does not cap the completion.
// The Messages API requires max_tokens to be set.
const DefaultMaxTokens = 1024

// transformRequest transforms a provider-agnostic request to Anthropic format.
// System messages are lifted into the top-level system field.
func transformRequest(req *providers.CompletionRequest) *Request {
	anthropicReq := &Request{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if anthropicReq.MaxTokens <= 0 {
		anthropicReq.MaxTokens = DefaultMaxTokens
	}

	for _, msg := range req.Messages {
		if msg.Role == providers.RoleSystem {
			if anthropicReq.System != "" {
				anthropicReq.System += "\n"
			}
			anthropicReq.System += msg.Content
			continue
		}
		anthropicReq.Messages = append(anthropicReq.Messages, Message{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	return anthropicReq
}

// transformResponse transforms an Anthropic response to the shared format.
func transformResponse(resp *Response) (*providers.CompletionResponse, error) {
	var content string
	for _, block := range resp.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}
	if content == "" {
		return nil, fmt.Errorf("missing completion content")
	}

	return &providers.CompletionResponse{
		ID:           resp.ID,
		Model:        resp.Model,
		Content:      content,
		FinishReason: normalizeStopReason(resp.StopReason),
		Usage: providers.TokenUsage{
			PromptTokens:     resp.Usage.InputTokens,
			CompletionTokens: resp.Usage.OutputTokens,
			TotalTokens:      resp.Usage.InputTokens + resp.Usage.OutputTokens,
		},
	}, nil
}

// normalizeStopReason normalizes Anthropic stop reasons to shared values.
func normalizeStopReason(reason string) string {
	switch reason {
	case "end_turn", "stop_sequence":
		return providers.FinishReasonStop
	case "max_tokens":
		return providers.FinishReasonLength
	default:
		return reason
	}
}
