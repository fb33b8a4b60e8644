package providers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// MockServer is a mock HTTP server for testing provider adapters.
// It simulates provider API responses including errors and slow upstreams.
type MockServer struct {
	server       *httptest.Server
	responses    map[string]MockResponse
	requestCount int
	mu           sync.Mutex
}

// MockResponse defines a mock response configuration.
type MockResponse struct {
	StatusCode int
	Body       interface{}
	Delay      time.Duration
	Headers    map[string]string
}

// NewMockServer creates a new mock server.
func NewMockServer() *MockServer {
	ms := &MockServer{
		responses: make(map[string]MockResponse),
	}
	ms.server = httptest.NewServer(http.HandlerFunc(ms.handler))
	return ms
}

// URL returns the mock server's base URL.
func (ms *MockServer) URL() string {
	return ms.server.URL
}

// Close closes the mock server.
func (ms *MockServer) Close() {
	ms.server.Close()
}

// SetResponse sets a mock response for a specific endpoint.
func (ms *MockServer) SetResponse(path string, response MockResponse) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.responses[path] = response
}

// GetRequestCount returns the number of requests received.
func (ms *MockServer) GetRequestCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	return ms.requestCount
}

// ResetRequestCount resets the request counter.
func (ms *MockServer) ResetRequestCount() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.requestCount = 0
}

// handler handles incoming HTTP requests.
func (ms *MockServer) handler(w http.ResponseWriter, r *http.Request) {
	ms.mu.Lock()
	ms.requestCount++
	response, ok := ms.responses[r.URL.Path]
	ms.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}

	if response.Delay > 0 {
		time.Sleep(response.Delay)
	}

	for key, value := range response.Headers {
		w.Header().Set(key, value)
	}

	w.WriteHeader(response.StatusCode)

	if response.Body != nil {
		switch v := response.Body.(type) {
		case string:
			_, _ = w.Write([]byte(v))
		case []byte:
			_, _ = w.Write(v)
		default:
			_ = json.NewEncoder(w).Encode(response.Body)
		}
	}
}

// MockOpenAIResponse creates a mock OpenAI chat completion response. The
// Friendli serverless API uses the same shape.
func MockOpenAIResponse(content string, model string) map[string]interface{} {
	return map[string]interface{}{
		"id":      "chatcmpl-123",
		"object":  "chat.completion",
		"created": time.Now().Unix(),
		"model":   model,
		"choices": []map[string]interface{}{
			{
				"index": 0,
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]interface{}{
			"prompt_tokens":     10,
			"completion_tokens": 20,
			"total_tokens":      30,
		},
	}
}

// MockAnthropicResponse creates a mock Anthropic messages response.
func MockAnthropicResponse(content string, model string) map[string]interface{} {
	return map[string]interface{}{
		"id":    "msg_123",
		"type":  "message",
		"role":  "assistant",
		"model": model,
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": content,
			},
		},
		"stop_reason": "end_turn",
		"usage": map[string]interface{}{
			"input_tokens":  10,
			"output_tokens": 20,
		},
	}
}

// MockErrorResponse creates a provider error body in OpenAI error format.
func MockErrorResponse(message, errType string) map[string]interface{} {
	return map[string]interface{}{
		"error": map[string]interface{}{
			"message": message,
			"type":    errType,
		},
	}
}
