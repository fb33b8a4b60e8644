package config

import (
	"fmt"
	"net/url"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "server.listen_address").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateServer(&cfg.Server)...)
	errs = append(errs, validateProviders(cfg.Providers)...)
	errs = append(errs, validateModels(cfg)...)
	errs = append(errs, validateQuality(cfg)...)
	errs = append(errs, validatePricing(cfg.Pricing)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

func validateServer(sc *ServerConfig) []FieldError {
	var errs []FieldError

	if sc.ListenAddress == "" {
		errs = append(errs, FieldError{
			Field:   "server.listen_address",
			Message: "listen address is required",
		})
	}
	if sc.MaxHeaderBytes < 0 {
		errs = append(errs, FieldError{
			Field:   "server.max_header_bytes",
			Message: "must not be negative",
		})
	}
	if sc.TLS.Enabled {
		if sc.TLS.CertFile == "" {
			errs = append(errs, FieldError{
				Field:   "server.tls.cert_file",
				Message: "required when TLS is enabled",
			})
		}
		if sc.TLS.KeyFile == "" {
			errs = append(errs, FieldError{
				Field:   "server.tls.key_file",
				Message: "required when TLS is enabled",
			})
		}
	}

	return errs
}

func validateProviders(providers map[string]ProviderConfig) []FieldError {
	var errs []FieldError

	for name, pc := range providers {
		field := "providers." + name

		if pc.BaseURL != "" {
			u, err := url.Parse(pc.BaseURL)
			if err != nil || u.Scheme == "" || u.Host == "" {
				errs = append(errs, FieldError{
					Field:   field + ".base_url",
					Message: fmt.Sprintf("invalid URL %q", pc.BaseURL),
				})
			}
		}
		if pc.Timeout < 0 {
			errs = append(errs, FieldError{
				Field:   field + ".timeout",
				Message: "must not be negative",
			})
		}
		if pc.PricePer1KTokensUSD < 0 {
			errs = append(errs, FieldError{
				Field:   field + ".price_per_1k_tokens_usd",
				Message: "must not be negative",
			})
		}
	}

	return errs
}

func validateModels(cfg *Config) []FieldError {
	var errs []FieldError

	seen := make(map[string]bool, len(cfg.Models))
	for i, m := range cfg.Models {
		field := fmt.Sprintf("models[%d]", i)

		if m.ID == "" {
			errs = append(errs, FieldError{
				Field:   field + ".id",
				Message: "model id is required",
			})
			continue
		}
		if seen[m.ID] {
			errs = append(errs, FieldError{
				Field:   field + ".id",
				Message: fmt.Sprintf("duplicate model id %q", m.ID),
			})
		}
		seen[m.ID] = true

		if m.Provider == "" {
			errs = append(errs, FieldError{
				Field:   field + ".provider",
				Message: "provider is required",
			})
		} else if _, ok := cfg.Providers[m.Provider]; !ok {
			errs = append(errs, FieldError{
				Field:   field + ".provider",
				Message: fmt.Sprintf("unknown provider %q", m.Provider),
			})
		}
		if m.PricePer1KTokensUSD < 0 {
			errs = append(errs, FieldError{
				Field:   field + ".price_per_1k_tokens_usd",
				Message: "must not be negative",
			})
		}
	}

	return errs
}

func validateQuality(cfg *Config) []FieldError {
	var errs []FieldError

	if !cfg.Quality.Enabled {
		return errs
	}
	if cfg.Quality.Provider != "" && !cfg.Quality.HeuristicFallback {
		// With the heuristic fallback enabled a missing judge provider is
		// tolerated at runtime, so only reject it when there is no fallback.
		if _, ok := cfg.Providers[cfg.Quality.Provider]; !ok {
			errs = append(errs, FieldError{
				Field:   "quality.provider",
				Message: fmt.Sprintf("unknown provider %q", cfg.Quality.Provider),
			})
		}
	}
	if cfg.Quality.Model == "" {
		errs = append(errs, FieldError{
			Field:   "quality.model",
			Message: "judge model is required when quality scoring is enabled",
		})
	}

	return errs
}

func validatePricing(pricing map[string]float64) []FieldError {
	var errs []FieldError

	for name, price := range pricing {
		if price < 0 {
			errs = append(errs, FieldError{
				Field:   "pricing." + name,
				Message: "must not be negative",
			})
		}
	}

	return errs
}

func validateTelemetry(tc *TelemetryConfig) []FieldError {
	var errs []FieldError

	switch tc.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid level %q (must be debug, info, warn, or error)", tc.Logging.Level),
		})
	}

	switch tc.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid format %q (must be json or text)", tc.Logging.Format),
		})
	}

	if tc.Metrics.Enabled && !strings.HasPrefix(tc.Metrics.Path, "/") {
		errs = append(errs, FieldError{
			Field:   "telemetry.metrics.path",
			Message: "must start with /",
		})
	}

	return errs
}
