package config

import "time"

// Config is the root configuration structure for Ganymede. It contains all
// configuration sections for the HTTP server, providers, the benchmark model
// catalog, quality scoring, pricing, and telemetry.
type Config struct {
	// Server contains HTTP server configuration including listen address,
	// timeouts, and CORS settings.
	Server ServerConfig `yaml:"server"`

	// Providers contains configuration for all LLM provider integrations.
	// Keys are provider names (e.g., "openai", "friendli", "anthropic").
	Providers map[string]ProviderConfig `yaml:"providers"`

	// Models is the benchmark model catalog. Each entry maps a short model
	// identifier to a provider and an upstream model name. Order is
	// preserved in API responses.
	Models []ModelConfig `yaml:"models"`

	// Benchmark contains configuration for benchmark execution.
	Benchmark BenchmarkConfig `yaml:"benchmark"`

	// Quality contains configuration for the optional response quality judge.
	Quality QualityConfig `yaml:"quality"`

	// Pricing contains per-provider price overrides in USD per 1000 tokens.
	// Keys are provider names. Entries here take precedence over built-in
	// defaults but not over per-model prices in the catalog.
	Pricing map[string]float64 `yaml:"pricing"`

	// Telemetry contains configuration for observability including logging
	// and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Watch controls whether the configuration file is watched for changes.
	// When enabled, pricing changes are applied without a restart.
	// Default: false
	Watch bool `yaml:"watch"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port for the server to listen on.
	// Format: "host:port" (e.g., "127.0.0.1:8080", "0.0.0.0:8080").
	// Default: "127.0.0.1:8080"
	ListenAddress string `yaml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body. A zero or negative value means no timeout.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response. Benchmark runs block on upstream LLM calls, so this must
	// comfortably exceed the per-call timeout.
	// Default: 180s
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled. If IdleTimeout is zero, ReadTimeout is used.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown.
	// If requests are still in-flight after this timeout, the server will
	// force shutdown.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxHeaderBytes controls the maximum number of bytes the server will
	// read parsing the request header's keys and values.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes"`

	// RequestTimeout is the overall deadline applied to each benchmark
	// request. Zero disables the deadline.
	// Default: 150s
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// StaticDir is an optional directory of static files served at "/".
	// Empty disables static file serving.
	StaticDir string `yaml:"static_dir"`

	// CORS contains Cross-Origin Resource Sharing configuration.
	CORS CORSConfig `yaml:"cors"`

	// TLS contains TLS configuration for the listener.
	TLS TLSConfig `yaml:"tls"`
}

// CORSConfig contains CORS (Cross-Origin Resource Sharing) configuration.
type CORSConfig struct {
	// Enabled controls whether CORS headers are emitted.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// AllowedOrigins is a list of allowed origins for CORS requests.
	// Use ["*"] to allow all origins.
	// Default: ["*"]
	AllowedOrigins []string `yaml:"allowed_origins"`

	// AllowedMethods is a list of allowed HTTP methods.
	// Default: ["GET", "POST", "OPTIONS"]
	AllowedMethods []string `yaml:"allowed_methods"`

	// AllowedHeaders is a list of allowed request headers.
	// Default: ["Content-Type"]
	AllowedHeaders []string `yaml:"allowed_headers"`

	// MaxAge is how long (in seconds) preflight results may be cached.
	// Default: 3600
	MaxAge int `yaml:"max_age"`
}

// TLSConfig contains TLS settings for the HTTP listener.
type TLSConfig struct {
	// Enabled controls whether the server listens with TLS.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// CertFile is the path to the PEM-encoded certificate.
	CertFile string `yaml:"cert_file"`

	// KeyFile is the path to the PEM-encoded private key.
	KeyFile string `yaml:"key_file"`
}

// ProviderConfig contains configuration for a single LLM provider.
type ProviderConfig struct {
	// Type identifies the provider adapter ("openai", "friendli",
	// "anthropic", "generic"). When empty the provider name is used.
	Type string `yaml:"type"`

	// BaseURL overrides the provider's default API endpoint.
	BaseURL string `yaml:"base_url"`

	// APIKey is the authentication credential for the provider. Prefer
	// setting this via environment variables rather than the config file.
	APIKey string `yaml:"api_key"`

	// Timeout is the per-request timeout for calls to this provider.
	// Default: 60s
	Timeout time.Duration `yaml:"timeout"`

	// PricePer1KTokensUSD overrides the price used for cost estimates of
	// models served by this provider. Zero means use built-in defaults.
	PricePer1KTokensUSD float64 `yaml:"price_per_1k_tokens_usd"`
}

// ModelConfig describes one entry of the benchmark model catalog.
type ModelConfig struct {
	// ID is the short identifier clients use in benchmark requests.
	ID string `yaml:"id"`

	// Label is a human-readable display name. Defaults to ID.
	Label string `yaml:"label"`

	// Provider names the provider that serves this model. Must match a key
	// of the Providers section.
	Provider string `yaml:"provider"`

	// Model is the upstream model name sent to the provider. When empty the
	// adapter resolves it from ID.
	Model string `yaml:"model"`

	// PricePer1KTokensUSD overrides the provider-level price for this model.
	PricePer1KTokensUSD float64 `yaml:"price_per_1k_tokens_usd"`
}

// BenchmarkConfig contains configuration for benchmark execution.
type BenchmarkConfig struct {
	// CallTimeout bounds each individual model call within a run. Zero
	// means calls are bounded only by the request context and provider
	// timeouts.
	// Default: 120s
	CallTimeout time.Duration `yaml:"call_timeout"`
}

// QualityConfig contains configuration for LLM-as-judge quality scoring.
type QualityConfig struct {
	// Enabled controls whether responses receive a quality score.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Provider names the provider used for the judge call. Must match a key
	// of the Providers section.
	// Default: "openai"
	Provider string `yaml:"provider"`

	// Model is the judge model.
	// Default: "gpt-4o-mini"
	Model string `yaml:"model"`

	// HeuristicFallback controls whether a length-based heuristic score is
	// used when the judge call fails or no judge provider is configured.
	// Default: true
	HeuristicFallback bool `yaml:"heuristic_fallback"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", or "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the log output format: "json" or "text".
	// Default: "json"
	Format string `yaml:"format"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected and exposed.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Path is the HTTP path the metrics handler is mounted on.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the Prometheus namespace for all metrics.
	// Default: "ganymede"
	Namespace string `yaml:"namespace"`
}
