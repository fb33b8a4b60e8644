package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// clearProviderEnv blanks the conventional credential variables so tests are
// insulated from the developer's shell.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, v := range []string{"OPENAI_API_KEY", "FRIENDLI_TOKEN", "FRIENDLI_API_KEY", "ANTHROPIC_API_KEY"} {
		t.Setenv(v, "")
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
server:
  listen_address: "0.0.0.0:9090"
providers:
  friendli:
    api_key: file-key
    timeout: 30s
models:
  - id: qwen3-32b
    provider: friendli
benchmark:
  call_timeout: 45s
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:9090" {
		t.Errorf("ListenAddress = %q", cfg.Server.ListenAddress)
	}
	if cfg.Providers["friendli"].APIKey != "file-key" {
		t.Errorf("friendli APIKey = %q", cfg.Providers["friendli"].APIKey)
	}
	if cfg.Providers["friendli"].Timeout != 30*time.Second {
		t.Errorf("friendli Timeout = %v", cfg.Providers["friendli"].Timeout)
	}
	if cfg.Benchmark.CallTimeout != 45*time.Second {
		t.Errorf("CallTimeout = %v", cfg.Benchmark.CallTimeout)
	}

	// Defaults fill the gaps.
	if cfg.Server.ReadTimeout != DefaultReadTimeout {
		t.Errorf("ReadTimeout = %v, want default", cfg.Server.ReadTimeout)
	}
	if cfg.Providers["friendli"].Type != "friendli" {
		t.Errorf("friendli Type = %q, want inferred from name", cfg.Providers["friendli"].Type)
	}
	if len(cfg.Models) != 1 || cfg.Models[0].Label != "qwen3-32b" {
		t.Errorf("Models = %+v, want label defaulted to id", cfg.Models)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "server: [not a mapping")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadConfigWithEnvOverridesMissingFileUsesDefaults(t *testing.T) {
	clearProviderEnv(t)

	cfg, err := LoadConfigWithEnvOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides failed: %v", err)
	}

	if cfg.Server.ListenAddress != DefaultListenAddress {
		t.Errorf("ListenAddress = %q, want default", cfg.Server.ListenAddress)
	}
	if len(cfg.Models) == 0 {
		t.Error("default model catalog should not be empty")
	}
	if _, ok := cfg.Providers["friendli"]; !ok {
		t.Error("default providers should include friendli")
	}
}

func TestEnvOverrides(t *testing.T) {
	clearProviderEnv(t)
	path := writeConfigFile(t, `
server:
  listen_address: "127.0.0.1:8080"
providers:
  openai:
    api_key: from-file
`)

	t.Setenv("GANYMEDE_SERVER_LISTEN_ADDRESS", "0.0.0.0:7070")
	t.Setenv("GANYMEDE_BENCHMARK_CALL_TIMEOUT", "90s")
	t.Setenv("GANYMEDE_PROVIDERS_OPENAI_API_KEY", "from-env")
	t.Setenv("GANYMEDE_LOG_LEVEL", "debug")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides failed: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:7070" {
		t.Errorf("ListenAddress = %q, want env override", cfg.Server.ListenAddress)
	}
	if cfg.Benchmark.CallTimeout != 90*time.Second {
		t.Errorf("CallTimeout = %v, want 90s", cfg.Benchmark.CallTimeout)
	}
	if cfg.Providers["openai"].APIKey != "from-env" {
		t.Errorf("openai APIKey = %q, want env override", cfg.Providers["openai"].APIKey)
	}
	if cfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Telemetry.Logging.Level)
	}
}

func TestConventionalCredentialEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-conventional")
	t.Setenv("FRIENDLI_TOKEN", "flp-conventional")

	cfg, err := LoadConfigWithEnvOverrides("")
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides failed: %v", err)
	}

	if cfg.Providers["openai"].APIKey != "sk-conventional" {
		t.Errorf("openai APIKey = %q, want OPENAI_API_KEY value", cfg.Providers["openai"].APIKey)
	}
	if cfg.Providers["friendli"].APIKey != "flp-conventional" {
		t.Errorf("friendli APIKey = %q, want FRIENDLI_TOKEN value", cfg.Providers["friendli"].APIKey)
	}
}

func TestConventionalEnvDoesNotOverrideExplicitKey(t *testing.T) {
	clearProviderEnv(t)
	path := writeConfigFile(t, `
providers:
  openai:
    api_key: explicit
`)
	t.Setenv("OPENAI_API_KEY", "sk-conventional")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("LoadConfigWithEnvOverrides failed: %v", err)
	}

	if cfg.Providers["openai"].APIKey != "explicit" {
		t.Errorf("openai APIKey = %q, want the explicit config value", cfg.Providers["openai"].APIKey)
	}
}

func TestDefaultModelsAreValid(t *testing.T) {
	cfg := DefaultConfig()

	if err := Validate(cfg); err != nil {
		t.Fatalf("default configuration should validate: %v", err)
	}

	seen := make(map[string]bool)
	for _, m := range cfg.Models {
		if seen[m.ID] {
			t.Errorf("duplicate default model id %q", m.ID)
		}
		seen[m.ID] = true
		if _, ok := cfg.Providers[m.Provider]; !ok {
			t.Errorf("default model %q references unknown provider %q", m.ID, m.Provider)
		}
	}
}
