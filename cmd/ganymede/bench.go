package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"mercator-hq/ganymede/pkg/benchmark"
	"mercator-hq/ganymede/pkg/cli"
	"mercator-hq/ganymede/pkg/config"
)

var benchFlags struct {
	prompt string
	models []string
	output string
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a one-shot benchmark from the command line",
	Long: `Run one prompt against a set of configured models and print the results.

Examples:
  # Benchmark two models
  ganymede bench --prompt "Explain TCP slow start" --models gpt-4o-mini,qwen3-32b

  # Benchmark every model in the catalog
  ganymede bench --prompt "Explain TCP slow start"

  # JSON output for scripting
  ganymede bench --prompt "..." --models gpt-4o-mini --output json`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().StringVarP(&benchFlags.prompt, "prompt", "p", "", "prompt to benchmark (required)")
	benchCmd.Flags().StringSliceVarP(&benchFlags.models, "models", "m", nil, "comma-separated model ids (default: all)")
	benchCmd.Flags().StringVarP(&benchFlags.output, "output", "o", "text", "output format (text, json)")
	_ = benchCmd.MarkFlagRequired("prompt")
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	setupLogging(cfg)

	application, err := buildApp(cfg)
	if err != nil {
		return cli.NewCommandError("bench", err)
	}
	defer application.Close()

	modelIDs := benchFlags.models
	if len(modelIDs) == 0 {
		for _, spec := range application.catalog.List() {
			modelIDs = append(modelIDs, spec.ID)
		}
	}

	resp, err := application.orchestrator.Run(cmd.Context(), &benchmark.Request{
		Prompt:   benchFlags.prompt,
		ModelIDs: modelIDs,
	})
	if err != nil {
		return cli.NewCommandError("bench", err)
	}

	if cli.OutputFormat(benchFlags.output) == cli.FormatJSON {
		return cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, resp)
	}

	printBenchTable(resp)
	return nil
}

// printBenchTable renders the benchmark results as an aligned table followed
// by the winner line.
func printBenchTable(resp *benchmark.Response) {
	table := cli.NewTable(os.Stdout)
	table.Header("MODEL", "STATUS", "LATENCY", "TOKENS", "COST", "QUALITY")

	for _, r := range resp.Results {
		if !r.Succeeded() {
			table.Row(r.ModelID, "failed: "+truncate(r.Error, 60), "-", "-", "-", "-")
			continue
		}

		quality := "-"
		if r.QualityScore != nil {
			quality = fmt.Sprintf("%.1f", *r.QualityScore)
		}
		table.Row(
			r.ModelID,
			"ok",
			fmt.Sprintf("%.0fms", r.LatencyMS),
			fmt.Sprintf("%d", r.TokensEstimate),
			fmt.Sprintf("$%.6f", r.EstimatedCostUSD),
			quality,
		)
	}
	_ = table.Flush()

	fmt.Println()
	if resp.Winner != nil {
		fmt.Printf("Winner: %s (%s)\n", *resp.Winner, resp.WinnerReason)
	} else {
		fmt.Printf("Winner: none (%s)\n", resp.WinnerReason)
	}
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
