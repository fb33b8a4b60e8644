package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any
// errors. Environment variables are not consulted; use
// LoadConfigWithEnvOverrides for that behavior.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Environment variables follow the naming
// convention GANYMEDE_SECTION_FIELD (e.g., GANYMEDE_SERVER_LISTEN_ADDRESS)
// and always take precedence over file-based configuration.
//
// If path is empty or the file does not exist, the built-in defaults are used
// as the base configuration. This keeps the server runnable with nothing but
// API keys in the environment.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	var cfg *Config

	if path == "" {
		cfg = DefaultConfig()
	} else if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the
// configuration. Variables use the format GANYMEDE_SECTION_FIELD.
func applyEnvOverrides(cfg *Config) {
	// Server overrides
	if val := os.Getenv("GANYMEDE_SERVER_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}
	if val := os.Getenv("GANYMEDE_SERVER_READ_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if val := os.Getenv("GANYMEDE_SERVER_WRITE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.WriteTimeout = d
		}
	}
	if val := os.Getenv("GANYMEDE_SERVER_REQUEST_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.RequestTimeout = d
		}
	}
	if val := os.Getenv("GANYMEDE_SERVER_STATIC_DIR"); val != "" {
		cfg.Server.StaticDir = val
	}

	// Benchmark overrides
	if val := os.Getenv("GANYMEDE_BENCHMARK_CALL_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Benchmark.CallTimeout = d
		}
	}

	// Quality overrides
	if val := os.Getenv("GANYMEDE_QUALITY_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Quality.Enabled = b
		}
	}
	if val := os.Getenv("GANYMEDE_QUALITY_PROVIDER"); val != "" {
		cfg.Quality.Provider = val
	}
	if val := os.Getenv("GANYMEDE_QUALITY_MODEL"); val != "" {
		cfg.Quality.Model = val
	}

	// Telemetry overrides
	if val := os.Getenv("GANYMEDE_LOG_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("GANYMEDE_LOG_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("GANYMEDE_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = b
		}
	}

	// Watch override
	if val := os.Getenv("GANYMEDE_WATCH"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Watch = b
		}
	}

	// Provider overrides for every configured provider.
	for name := range cfg.Providers {
		applyProviderEnvOverrides(cfg, name)
	}

	// Conventional provider credential variables take effect when the
	// GANYMEDE_ form is absent.
	applyConventionalKey(cfg, "openai", "OPENAI_API_KEY")
	applyConventionalKey(cfg, "friendli", "FRIENDLI_TOKEN")
	applyConventionalKey(cfg, "friendli", "FRIENDLI_API_KEY")
	applyConventionalKey(cfg, "anthropic", "ANTHROPIC_API_KEY")
}

// applyProviderEnvOverrides applies environment variable overrides for a
// specific provider. Provider variables follow the format
// GANYMEDE_PROVIDERS_<NAME>_<FIELD> where NAME is the uppercase provider name.
func applyProviderEnvOverrides(cfg *Config, providerName string) {
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]ProviderConfig)
	}

	pc := cfg.Providers[providerName]
	prefix := "GANYMEDE_PROVIDERS_" + envName(providerName) + "_"

	if val := os.Getenv(prefix + "API_KEY"); val != "" {
		pc.APIKey = val
	}
	if val := os.Getenv(prefix + "BASE_URL"); val != "" {
		pc.BaseURL = val
	}
	if val := os.Getenv(prefix + "TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			pc.Timeout = d
		}
	}
	if val := os.Getenv(prefix + "PRICE_PER_1K_TOKENS_USD"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			pc.PricePer1KTokensUSD = f
		}
	}

	cfg.Providers[providerName] = pc
}

// applyConventionalKey fills in a provider API key from a conventional
// environment variable when the provider exists and has no key yet.
func applyConventionalKey(cfg *Config, providerName, envVar string) {
	pc, ok := cfg.Providers[providerName]
	if !ok || pc.APIKey != "" {
		return
	}
	if val := os.Getenv(envVar); val != "" {
		pc.APIKey = val
		cfg.Providers[providerName] = pc
	}
}

// envName converts a provider name to its environment variable segment.
// Dots and dashes become underscores (e.g., "my-provider" -> "MY_PROVIDER").
func envName(name string) string {
	upper := strings.ToUpper(name)
	upper = strings.ReplaceAll(upper, "-", "_")
	upper = strings.ReplaceAll(upper, ".", "_")
	return upper
}
