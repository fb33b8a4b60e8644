package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
	"mercator-hq/ganymede/pkg/cli"
	"mercator-hq/ganymede/pkg/config"
	"mercator-hq/ganymede/pkg/server"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Ganymede benchmark API server",
	Long: `Start the Ganymede benchmark API server with the specified configuration.

The server exposes GET /api/models, POST /api/benchmark, and /health on the
configured listen address, plus a Prometheus metrics endpoint when telemetry
is enabled.

Examples:
  # Start with default config
  ganymede run

  # Start with custom config
  ganymede run --config /etc/ganymede/config.yaml

  # Override listen address
  ganymede run --listen 0.0.0.0:8080

  # Validate config without starting server
  ganymede run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}

	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}

	setupLogging(cfg)

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	application, err := buildApp(cfg)
	if err != nil {
		return cli.NewCommandError("run", err)
	}
	defer application.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Watch mode keeps the pricing table in sync with the config file.
	if cfg.Watch {
		watcher, err := config.NewWatcher(cfgFile, slog.Default())
		if err != nil {
			return cli.NewCommandError("run", err)
		}
		go func() {
			if err := watcher.Watch(ctx, func(newCfg *config.Config) {
				application.calculator.UpdatePricing(pricingTable(newCfg))
			}); err != nil {
				slog.Error("configuration watcher stopped", "error", err)
			}
		}()
	}

	var metricsHandler http.Handler
	if application.recorder != nil {
		metricsHandler = application.recorder.Handler()
	}

	srv := server.NewServer(
		&cfg.Server,
		application.catalog,
		application.orchestrator,
		metricsHandler,
		cfg.Telemetry.Metrics.Path,
	)

	slog.Info("ganymede starting",
		"version", Version,
		"models", application.catalog.Len(),
		"address", cfg.Server.ListenAddress,
	)

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("run", err)
	}
	return nil
}

// pricingTable flattens the configuration's pricing into a provider price
// map: provider-level values first, explicit pricing entries winning.
func pricingTable(cfg *config.Config) map[string]float64 {
	table := make(map[string]float64)
	for name, pc := range cfg.Providers {
		if pc.PricePer1KTokensUSD > 0 {
			table[name] = pc.PricePer1KTokensUSD
		}
	}
	for name, price := range cfg.Pricing {
		table[name] = price
	}
	return table
}
