// Package generic implements a provider adapter for any OpenAI-compatible
// API, such as Ollama, LM Studio, or vLLM.
//
// It reuses the openai adapter's wire format but requires an explicit base
// URL and makes the API key optional, since local backends typically do not
// authenticate.
package generic
