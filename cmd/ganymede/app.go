package main

import (
	"fmt"
	"log/slog"
	"os"

	"mercator-hq/ganymede/pkg/benchmark"
	"mercator-hq/ganymede/pkg/catalog"
	"mercator-hq/ganymede/pkg/config"
	"mercator-hq/ganymede/pkg/processing/costs"
	"mercator-hq/ganymede/pkg/providerfactory"
	"mercator-hq/ganymede/pkg/providers"
	"mercator-hq/ganymede/pkg/quality"
	"mercator-hq/ganymede/pkg/telemetry/metrics"
)

// app holds the assembled benchmark runtime shared by the run and bench
// commands.
type app struct {
	catalog      *catalog.Catalog
	orchestrator *benchmark.Orchestrator
	invoker      *benchmark.ProviderInvoker
	calculator   *costs.Calculator
	recorder     *metrics.Recorder
}

// Close releases provider connections.
func (a *app) Close() error {
	return a.invoker.Close()
}

// setupLogging installs the default slog logger according to the telemetry
// configuration. The --verbose flag forces debug level.
func setupLogging(cfg *config.Config) {
	var level slog.Level
	switch cfg.Telemetry.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}

	// Logs go to stderr so command output (tables, JSON) stays parseable.
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Telemetry.Logging.Format == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// buildApp assembles the catalog, provider adapters, cost calculator, quality
// scorer, metrics recorder, and orchestrator from the configuration.
func buildApp(cfg *config.Config) (*app, error) {
	// Catalog
	specs := make([]catalog.ModelSpec, 0, len(cfg.Models))
	for _, m := range cfg.Models {
		specs = append(specs, catalog.ModelSpec{
			ID:                  m.ID,
			Label:               m.Label,
			Provider:            m.Provider,
			Model:               m.Model,
			PricePer1KTokensUSD: m.PricePer1KTokensUSD,
		})
	}
	cat, err := catalog.New(specs)
	if err != nil {
		return nil, fmt.Errorf("failed to build model catalog: %w", err)
	}

	// Provider adapters. Providers without credentials are skipped; models
	// pointing at them fail individually at benchmark time instead of
	// blocking startup.
	adapters := make(map[string]providers.Provider, len(cfg.Providers))
	for name, pc := range cfg.Providers {
		if pc.APIKey == "" && pc.Type != "generic" {
			slog.Warn("provider has no API key, skipping", "provider", name)
			continue
		}

		adapter, err := providerfactory.NewProvider(providers.ProviderConfig{
			Name:    name,
			Type:    pc.Type,
			BaseURL: pc.BaseURL,
			APIKey:  pc.APIKey,
			Timeout: pc.Timeout,
		})
		if err != nil {
			slog.Warn("provider failed to initialize, skipping", "provider", name, "error", err)
			continue
		}

		slog.Info("provider initialized", "provider", name, "type", pc.Type)
		adapters[name] = adapter
	}

	invoker := benchmark.NewProviderInvoker(adapters)

	// Pricing: provider-level config first, explicit pricing section wins.
	overrides := make(map[string]float64)
	for name, pc := range cfg.Providers {
		if pc.PricePer1KTokensUSD > 0 {
			overrides[name] = pc.PricePer1KTokensUSD
		}
	}
	for name, price := range cfg.Pricing {
		overrides[name] = price
	}
	calculator := costs.NewCalculator(overrides)

	opts := []benchmark.Option{
		benchmark.WithCallTimeout(cfg.Benchmark.CallTimeout),
	}

	// Quality scorer
	if scorer := buildScorer(cfg, adapters); scorer != nil {
		opts = append(opts, benchmark.WithScorer(scorer))
	}

	// Metrics
	var recorder *metrics.Recorder
	if cfg.Telemetry.Metrics.Enabled {
		recorder = metrics.NewRecorder(metrics.Config{
			Enabled:   true,
			Namespace: cfg.Telemetry.Metrics.Namespace,
		}, nil)
		opts = append(opts, benchmark.WithSink(recorder))
	}

	orchestrator := benchmark.NewOrchestrator(cat, invoker, calculator, opts...)

	return &app{
		catalog:      cat,
		orchestrator: orchestrator,
		invoker:      invoker,
		calculator:   calculator,
		recorder:     recorder,
	}, nil
}

// buildScorer picks the quality scorer implied by the configuration: a judge
// model when its provider is available, a length heuristic as fallback, or
// nothing when scoring is disabled.
func buildScorer(cfg *config.Config, adapters map[string]providers.Provider) quality.Scorer {
	if !cfg.Quality.Enabled {
		return nil
	}

	judge, ok := adapters[cfg.Quality.Provider]
	if ok {
		scorer := quality.NewJudgeScorer(judge, cfg.Quality.Model)
		if cfg.Quality.HeuristicFallback {
			return quality.FallbackScorer{Primary: scorer, Fallback: quality.HeuristicScorer{}}
		}
		return scorer
	}

	if cfg.Quality.HeuristicFallback {
		slog.Info("judge provider unavailable, using heuristic quality scoring",
			"provider", cfg.Quality.Provider,
		)
		return quality.HeuristicScorer{}
	}

	slog.Warn("quality scoring enabled but judge provider unavailable",
		"provider", cfg.Quality.Provider,
	)
	return nil
}
