// Package openai implements the provider adapter for the OpenAI Chat
// Completions API.
//
// The adapter transforms provider-agnostic completion requests into OpenAI's
// request format, authenticates with a Bearer token, and normalizes the
// response (content, finish reason, token usage) back into the shared shape.
//
// The request/response types in this package are also reused by the friendli
// and generic adapters, which speak OpenAI-compatible APIs at different base
// URLs.
package openai
