// Package tokens implements character-based token estimation.
//
// The benchmark does not run a real tokenizer. Token usage is approximated
// with a fixed 4-characters-per-token heuristic over the combined prompt and
// output lengths:
//
//	tokens = ceil((promptLen + outputLen) / 4.0)
//
// The formula is part of the service's external contract (cost figures and
// tests depend on it), so it must not vary with model or configuration.
package tokens
