// Package providers defines the provider adapter abstraction used to call
// hosted LLM APIs.
//
// Each provider subpackage (openai, friendli, anthropic, generic) hides one
// provider's authentication scheme, base URL, and request/response JSON shape
// behind the Provider interface. Callers build a provider-agnostic
// CompletionRequest, and adapters transform it to the provider wire format and
// normalize the response back.
//
// The package also defines the typed error taxonomy shared by all adapters:
//
//   - ProviderError: non-2xx responses and general provider failures
//   - AuthError: rejected credentials (401/403)
//   - RateLimitError: 429 with optional Retry-After
//   - TimeoutError: request exceeded the configured timeout
//   - ParseError: malformed or empty response bodies
//   - ValidationError: invalid request before any network call
//   - ConfigError: invalid adapter configuration
//
// Adapters perform exactly one attempt per call. The benchmark measures a
// single cold request per model, so transient-error retries would distort the
// latency figures they exist to protect.
package providers
