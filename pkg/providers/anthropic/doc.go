// Package anthropic implements the provider adapter for Anthropic's
// Messages API.
//
// The adapter authenticates with the x-api-key header and a pinned
// anthropic-version, moves system messages into the API's top-level system
// field, and normalizes the content-block response shape back into the shared
// CompletionResponse.
package anthropic
