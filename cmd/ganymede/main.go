// Ganymede is a benchmark service for hosted LLM APIs.
//
// It fans a single prompt out to a set of configured models in parallel,
// measures latency, estimates tokens and cost, optionally scores response
// quality with a judge model, and picks a deterministic winner.
//
// Usage:
//
//	# Start the API server with default configuration
//	ganymede run
//
//	# Start with a custom configuration file
//	ganymede run --config /path/to/config.yaml
//
//	# Run a one-shot benchmark from the command line
//	ganymede bench --prompt "Explain TCP slow start" --models gpt-4o-mini,qwen3-32b
//
//	# List the configured model catalog
//	ganymede models
//
//	# Show version information
//	ganymede version
package main

func main() {
	Execute()
}
