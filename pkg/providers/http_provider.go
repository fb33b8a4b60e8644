package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// HTTPProvider is the base implementation for HTTP-based provider adapters.
// It provides connection pooling, timeout handling, and mapping of HTTP
// failures to the typed error taxonomy.
//
// Concrete provider implementations (OpenAI, FriendliAI, etc.) embed this
// struct and implement the Provider interface methods on top of it.
type HTTPProvider struct {
	// config contains the provider configuration
	config ProviderConfig

	// client is the HTTP client with connection pooling, shared read-only
	// across concurrent benchmark units
	client *http.Client
}

// NewHTTPProvider creates a new base HTTP provider with connection pooling.
func NewHTTPProvider(config ProviderConfig) *HTTPProvider {
	transport := &http.Transport{
		MaxIdleConns:        config.MaxIdleConns,
		MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
		IdleConnTimeout:     config.IdleConnTimeout,
		DisableCompression:  false,
		ForceAttemptHTTP2:   true,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   config.Timeout,
	}

	return &HTTPProvider{
		config: config,
		client: client,
	}
}

// GetName returns the provider's configured name.
func (p *HTTPProvider) GetName() string {
	return p.config.Name
}

// GetType returns the provider's type.
func (p *HTTPProvider) GetType() string {
	return p.config.Type
}

// GetConfig returns the provider's configuration.
func (p *HTTPProvider) GetConfig() ProviderConfig {
	return p.config
}

// DoRequest performs a single HTTP request with timeout handling.
// Non-2xx responses are mapped to typed errors; there is no retry.
func (p *HTTPProvider) DoRequest(ctx context.Context, method, url string, body []byte, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}
	if req.Header.Get("Content-Type") == "" && body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	slog.Debug("sending request to provider",
		"provider", p.config.Name,
		"method", method,
		"url", url,
	)

	resp, err := p.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &TimeoutError{
				Provider: p.config.Name,
				Timeout:  p.config.Timeout,
			}
		}
		return nil, &ProviderError{
			Provider: p.config.Name,
			Message:  "request failed",
			Cause:    err,
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	errorBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, &AuthError{
			Provider: p.config.Name,
			Message:  string(errorBody),
		}

	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return nil, &RateLimitError{
			Provider:   p.config.Name,
			RetryAfter: retryAfter,
			Message:    string(errorBody),
		}

	default:
		return nil, &ProviderError{
			Provider:   p.config.Name,
			StatusCode: resp.StatusCode,
			Message:    string(errorBody),
		}
	}
}

// DoJSONRequest performs a JSON request and decodes the response.
// An empty response body is a ParseError: every provider endpoint used by the
// benchmark returns a JSON document on success.
func (p *HTTPProvider) DoJSONRequest(ctx context.Context, method, url string, reqBody interface{}, respBody interface{}, headers map[string]string) error {
	var bodyBytes []byte
	var err error
	if reqBody != nil {
		bodyBytes, err = json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	resp, err := p.DoRequest(ctx, method, url, bodyBytes, headers)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	responseBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ParseError{
			Provider: p.config.Name,
			Cause:    fmt.Errorf("failed to read response: %w", err),
		}
	}

	if respBody != nil {
		if len(responseBytes) == 0 {
			return &ParseError{
				Provider: p.config.Name,
				Cause:    fmt.Errorf("empty response body"),
			}
		}
		if err := json.Unmarshal(responseBytes, respBody); err != nil {
			return &ParseError{
				Provider:    p.config.Name,
				RawResponse: string(responseBytes),
				Cause:       fmt.Errorf("failed to unmarshal response: %w", err),
			}
		}
	}

	return nil
}

// Close closes idle connections held by the HTTP client.
func (p *HTTPProvider) Close() error {
	p.client.CloseIdleConnections()
	slog.Debug("provider closed", "provider", p.config.Name)
	return nil
}

// parseRetryAfter parses the Retry-After header value.
// It supports both delay-seconds and HTTP-date formats.
func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}

	var seconds int
	if _, err := fmt.Sscanf(header, "%d", &seconds); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}

	return 0
}
