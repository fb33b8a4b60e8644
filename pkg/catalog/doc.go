// Package catalog defines the benchmarkable model catalog: the mapping from
// short model identifiers to providers, upstream model names, and optional
// per-model pricing. The catalog is built once at startup from configuration
// and treated as immutable afterwards.
package catalog
