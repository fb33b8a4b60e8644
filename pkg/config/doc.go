// Package config provides configuration management for Ganymede.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides. It provides a type-safe
// configuration system with validation and sensible defaults, including a
// built-in model catalog so the server is runnable with nothing but provider
// API keys in the environment.
//
// # Configuration Loading
//
// Configuration can be loaded in two ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("config.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention GANYMEDE_SECTION_FIELD.
// For example:
//
//   - GANYMEDE_SERVER_LISTEN_ADDRESS overrides server.listen_address
//   - GANYMEDE_PROVIDERS_OPENAI_API_KEY overrides providers.openai.api_key
//   - GANYMEDE_LOG_LEVEL overrides telemetry.logging.level
//
// The conventional credential variables OPENAI_API_KEY, FRIENDLI_TOKEN,
// FRIENDLI_API_KEY, and ANTHROPIC_API_KEY are also honored when the
// corresponding provider has no key configured.
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Hot Reload
//
// When watch mode is enabled, Watcher observes the configuration file and
// delivers reloaded configurations through a callback. Pricing changes take
// effect on the next benchmark run without a restart.
package config
