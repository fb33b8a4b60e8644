package config

import "time"

// Default values for configuration fields.
const (
	// Server defaults
	DefaultListenAddress   = "127.0.0.1:8080"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 180 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultMaxHeaderBytes  = 1048576 // 1MB
	DefaultRequestTimeout  = 150 * time.Second

	// CORS defaults
	DefaultCORSEnabled = true
	DefaultCORSMaxAge  = 3600 // 1 hour

	// Provider defaults
	DefaultProviderTimeout = 60 * time.Second

	// Benchmark defaults
	DefaultCallTimeout = 120 * time.Second

	// Quality defaults
	DefaultQualityEnabled           = true
	DefaultQualityProvider          = "openai"
	DefaultQualityModel             = "gpt-4o-mini"
	DefaultQualityHeuristicFallback = true

	// Telemetry defaults
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "json"
	DefaultMetricsEnabled   = true
	DefaultMetricsPath      = "/metrics"
	DefaultMetricsNamespace = "ganymede"
)

// DefaultModels returns the built-in benchmark model catalog used when the
// configuration file does not declare a models section.
func DefaultModels() []ModelConfig {
	return []ModelConfig{
		{ID: "glm-4.6", Label: "GLM 4.6", Provider: "friendli"},
		{ID: "llama-3.1-8b-instruct", Label: "Llama 3.1 8B Instruct", Provider: "friendli"},
		{ID: "magistral-small-2506", Label: "Magistral Small 2506", Provider: "friendli"},
		{ID: "a.x-3.1", Label: "A.X 3.1", Provider: "friendli"},
		{ID: "qwen3-235b-thinking-2507", Label: "Qwen3 235B Thinking 2507", Provider: "friendli"},
		{ID: "qwen3-235b-instruct-2507", Label: "Qwen3 235B Instruct 2507", Provider: "friendli"},
		{ID: "llama-3.3-70b-instruct", Label: "Llama 3.3 70B Instruct", Provider: "friendli"},
		{ID: "devstral-small-2505", Label: "Devstral Small 2505", Provider: "friendli"},
		{ID: "gemma-3-27b-it", Label: "Gemma 3 27B IT", Provider: "friendli"},
		{ID: "qwen3-32b", Label: "Qwen3 32B", Provider: "friendli"},
		{ID: "gpt-4o-mini", Label: "GPT-4o mini", Provider: "openai", Model: "gpt-4o-mini"},
	}
}

// DefaultProviders returns the built-in provider section. API keys are left
// empty and are expected to arrive via environment variables.
func DefaultProviders() map[string]ProviderConfig {
	return map[string]ProviderConfig{
		"friendli": {Type: "friendli", Timeout: DefaultProviderTimeout},
		"openai":   {Type: "openai", Timeout: DefaultProviderTimeout},
	}
}

// DefaultConfig returns a fully populated configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in default values for any unset configuration fields.
// It is safe to call multiple times.
func ApplyDefaults(cfg *Config) {
	// Server
	if cfg.Server.ListenAddress == "" {
		cfg.Server.ListenAddress = DefaultListenAddress
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Server.MaxHeaderBytes == 0 {
		cfg.Server.MaxHeaderBytes = DefaultMaxHeaderBytes
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	// CORS
	if len(cfg.Server.CORS.AllowedOrigins) == 0 {
		cfg.Server.CORS.Enabled = DefaultCORSEnabled
		cfg.Server.CORS.AllowedOrigins = []string{"*"}
	}
	if len(cfg.Server.CORS.AllowedMethods) == 0 {
		cfg.Server.CORS.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(cfg.Server.CORS.AllowedHeaders) == 0 {
		cfg.Server.CORS.AllowedHeaders = []string{"Content-Type"}
	}
	if cfg.Server.CORS.MaxAge == 0 {
		cfg.Server.CORS.MaxAge = DefaultCORSMaxAge
	}

	// Providers. Built-in providers are merged in rather than replaced so a
	// file declaring only one provider still validates against the default
	// model catalog; providers without credentials are skipped at runtime.
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]ProviderConfig)
	}
	for name, def := range DefaultProviders() {
		if _, ok := cfg.Providers[name]; !ok {
			cfg.Providers[name] = def
		}
	}
	for name, pc := range cfg.Providers {
		if pc.Type == "" {
			pc.Type = name
		}
		if pc.Timeout == 0 {
			pc.Timeout = DefaultProviderTimeout
		}
		cfg.Providers[name] = pc
	}

	// Models
	if len(cfg.Models) == 0 {
		cfg.Models = DefaultModels()
	}
	for i, m := range cfg.Models {
		if m.Label == "" {
			cfg.Models[i].Label = m.ID
		}
	}

	// Benchmark
	if cfg.Benchmark.CallTimeout == 0 {
		cfg.Benchmark.CallTimeout = DefaultCallTimeout
	}

	// Quality
	if cfg.Quality.Provider == "" {
		cfg.Quality.Enabled = DefaultQualityEnabled
		cfg.Quality.Provider = DefaultQualityProvider
		cfg.Quality.HeuristicFallback = DefaultQualityHeuristicFallback
	}
	if cfg.Quality.Model == "" {
		cfg.Quality.Model = DefaultQualityModel
	}

	// Telemetry
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLogLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLogFormat
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Enabled = DefaultMetricsEnabled
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
}
