// Package cli provides shared helpers for the ganymede command line:
// typed command errors and output formatting (text, JSON, aligned tables).
package cli
