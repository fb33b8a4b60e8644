package openai

import (
	"fmt"

	"mercator-hq/ganymede/pkg/providers"
)

// OpenAI API request/response types

// Request represents an OpenAI chat completion request.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	N           int       `json:"n,omitempty"`
}

// Message represents a message in OpenAI format.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content,omitempty"`

	// ReasoningContent is emitted by some OpenAI-compatible backends
	// (FriendliAI reasoning models) alongside the main content.
	ReasoningContent string `json:"reasoning_content,omitempty"`
}

// Response represents an OpenAI chat completion response.
type Response struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice represents a completion choice in OpenAI format.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Usage represents token usage in OpenAI format.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Transformation functions

// TransformRequest transforms a provider-agnostic request to OpenAI format.
func TransformRequest(req *providers.CompletionRequest) *Request {
	openaiReq := &Request{
		Model:       req.Model,
		Messages:    make([]Message, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		N:           1, // Always generate 1 completion
	}

	for i, msg := range req.Messages {
		openaiReq.Messages[i] = Message{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	return openaiReq
}

// TransformResponse transforms an OpenAI response to provider-agnostic format.
// A response without choices or with empty completion content is an error so
// that callers can distinguish "provider answered nothing" from a real answer.
func TransformResponse(resp *Response) (*providers.CompletionResponse, error) {
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	// Use the first choice (we always request N=1)
	choice := resp.Choices[0]

	content := choice.Message.Content
	if content == "" && choice.Message.ReasoningContent != "" {
		content = choice.Message.ReasoningContent
	}
	if content == "" {
		return nil, fmt.Errorf("missing completion content")
	}

	return &providers.CompletionResponse{
		ID:           resp.ID,
		Model:        resp.Model,
		Content:      content,
		FinishReason: normalizeFinishReason(choice.FinishReason),
		Usage: providers.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
		Created: resp.Created,
	}, nil
}

// normalizeFinishReason normalizes OpenAI finish reasons to shared values.
func normalizeFinishReason(reason string) string {
	switch reason {
	case "stop":
		return providers.FinishReasonStop
	case "length":
		return providers.FinishReasonLength
	default:
		return reason
	}
}
