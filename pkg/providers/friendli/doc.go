// Package friendli implements the provider adapter for the FriendliAI
// serverless endpoints.
//
// FriendliAI speaks the OpenAI Chat Completions wire format, so the adapter
// reuses the openai package's request/response types. It differs in its base
// URL, its token-based authentication, and in mapping the short catalog model
// ids (e.g. "llama-3.1-8b-instruct") to the full org-qualified model names the
// endpoint expects (e.g. "meta-llama/Llama-3.1-8B-Instruct").
package friendli
