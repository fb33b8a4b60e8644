package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ganymede",
	Short: "Ganymede - LLM benchmark service",
	Long: `Ganymede benchmarks hosted LLM APIs.

It sends one prompt to many models in parallel, measures latency, estimates
token usage and cost, optionally scores response quality with a judge model,
and reports a deterministic winner. A single slow or failing model never
hides the results of the others.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
