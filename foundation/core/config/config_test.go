// File: config_test.go
// Title: Configuration Tests
// Description: Tests for loading, defaults, environment overrides, discovery
//              and validation of the typed configuration.
// Author: fynk authors
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive tests
// - 2026-10-19 v0.2.0: Tests for typed sections and FYNK_* overrides

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/fynk-lang/fynk/foundation/core/error"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func envMap(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "warn" {
		t.Errorf("Expected log level warn, got %s", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "console" {
		t.Errorf("Expected log format console, got %s", cfg.General.LogFormat)
	}
	if cfg.Parser.MaxSourceBytes != DefaultMaxSourceBytes {
		t.Errorf("Expected max source bytes %d, got %d", DefaultMaxSourceBytes, cfg.Parser.MaxSourceBytes)
	}
	if cfg.Parser.InequalityOnly {
		t.Error("Expected inequality_only to default to false")
	}
	if cfg.Output.Format != "json" || !cfg.Output.ColorEnabled() {
		t.Errorf("Expected json output with color, got %s color=%v", cfg.Output.Format, cfg.Output.ColorEnabled())
	}
	if cfg.Playground.Addr != DefaultPlaygroundAddr {
		t.Errorf("Expected addr %s, got %s", DefaultPlaygroundAddr, cfg.Playground.Addr)
	}
	if cfg.Playground.ReadTimeout.Duration != DefaultReadTimeout {
		t.Errorf("Expected read timeout %v, got %v", DefaultReadTimeout, cfg.Playground.ReadTimeout.Duration)
	}
	if cfg.Playground.CacheSize != DefaultCacheSize || cfg.Playground.CacheTTL.Duration != DefaultCacheTTL {
		t.Errorf("Expected default cache settings, got %d/%v", cfg.Playground.CacheSize, cfg.Playground.CacheTTL.Duration)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	dir := t.TempDir()
	path := writeFile(t, dir, "fynk.toml", `
[general]
log_level = "debug"

[parser]
max_source_bytes = 2048
inequality_only = true

[output]
format = "tree"
color = false

[playground]
read_timeout = "5s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("Expected debug, got %s", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "console" {
		t.Errorf("Expected default log format, got %s", cfg.General.LogFormat)
	}
	if cfg.Parser.MaxSourceBytes != 2048 || !cfg.Parser.InequalityOnly {
		t.Errorf("Unexpected parser section: %+v", cfg.Parser)
	}
	if cfg.Output.Format != "tree" || cfg.Output.ColorEnabled() {
		t.Errorf("Unexpected output section: %s color=%v", cfg.Output.Format, cfg.Output.ColorEnabled())
	}
	if cfg.Playground.ReadTimeout.Duration != 5*time.Second {
		t.Errorf("Expected 5s, got %v", cfg.Playground.ReadTimeout.Duration)
	}
	if cfg.Source != path {
		t.Errorf("Expected source %s, got %s", path, cfg.Source)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "fynk.yml", `
general:
  log_format: json
output:
  format: yaml
playground:
  addr: "0.0.0.0:9000"
  read_timeout: 90s
  max_message_bytes: 1024
  cache_size: -1
  cache_ttl: 30s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogFormat != "json" {
		t.Errorf("Expected json, got %s", cfg.General.LogFormat)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Expected yaml, got %s", cfg.Output.Format)
	}
	if cfg.Playground.Addr != "0.0.0.0:9000" {
		t.Errorf("Expected 0.0.0.0:9000, got %s", cfg.Playground.Addr)
	}
	if cfg.Playground.ReadTimeout.Duration != 90*time.Second {
		t.Errorf("Expected 90s, got %v", cfg.Playground.ReadTimeout.Duration)
	}
	if cfg.Playground.MaxMessageBytes != 1024 {
		t.Errorf("Expected 1024, got %d", cfg.Playground.MaxMessageBytes)
	}
	if cfg.Playground.CacheSize != -1 || cfg.Playground.CacheTTL.Duration != 30*time.Second {
		t.Errorf("Expected disabled cache with 30s ttl, got %d/%v", cfg.Playground.CacheSize, cfg.Playground.CacheTTL.Duration)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.toml", "[general\nlog_level=")

	tests := []struct {
		name string
		path string
		code mdwerror.Code
	}{
		{"empty path", "  ", mdwerror.CodeInvalidInput},
		{"missing file", filepath.Join(dir, "nope.toml"), mdwerror.CodeMissingConfig},
		{"malformed toml", broken, mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if got := mdwerror.GetCode(err); got != tt.code {
				t.Errorf("Expected code %s, got %s", tt.code, got)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvLogLevel:       "trace",
		EnvLogFormat:      "logfmt",
		EnvMaxSourceBytes: "100",
		EnvInequalityOnly: "true",
		EnvOutputFormat:   "yaml",
		EnvPlaygroundAddr: ":8080",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if cfg.General.LogLevel != "trace" || cfg.General.LogFormat != "logfmt" {
		t.Errorf("Unexpected general section: %+v", cfg.General)
	}
	if cfg.Parser.MaxSourceBytes != 100 || !cfg.Parser.InequalityOnly {
		t.Errorf("Unexpected parser section: %+v", cfg.Parser)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Expected yaml, got %s", cfg.Output.Format)
	}
	if cfg.Playground.Addr != ":8080" {
		t.Errorf("Expected :8080, got %s", cfg.Playground.Addr)
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad size", map[string]string{EnvMaxSourceBytes: "lots"}},
		{"bad bool", map[string]string{EnvInequalityOnly: "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Default().ApplyEnv(envMap(tt.env))
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("Expected CodeInvalidConfig, got %v", err)
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	yamlPath := writeFile(t, dir, "fynk.yaml", "output:\n  format: tree\n")
	tomlPath := writeFile(t, dir, "other.toml", "[output]\nformat = \"yaml\"\n")

	tests := []struct {
		name       string
		options    DiscoveryOptions
		wantFormat string
		wantSource string
	}{
		{
			name:       "first existing path",
			options:    DiscoveryOptions{Paths: []string{filepath.Join(dir, "fynk.toml"), yamlPath}, Lookup: envMap(nil)},
			wantFormat: "tree",
			wantSource: yamlPath,
		},
		{
			name:       "env wins over paths",
			options:    DiscoveryOptions{Paths: []string{yamlPath}, Lookup: envMap(map[string]string{EnvConfig: tomlPath})},
			wantFormat: "yaml",
			wantSource: tomlPath,
		},
		{
			name:       "explicit wins over env",
			options:    DiscoveryOptions{Explicit: yamlPath, Lookup: envMap(map[string]string{EnvConfig: tomlPath})},
			wantFormat: "tree",
			wantSource: yamlPath,
		},
		{
			name:       "nothing found gives defaults",
			options:    DiscoveryOptions{Paths: []string{filepath.Join(dir, "missing.toml")}, Lookup: envMap(nil)},
			wantFormat: "json",
			wantSource: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Discover(tt.options)
			if err != nil {
				t.Fatalf("Discover() error = %v", err)
			}
			if cfg.Output.Format != tt.wantFormat {
				t.Errorf("Expected format %s, got %s", tt.wantFormat, cfg.Output.Format)
			}
			if cfg.Source != tt.wantSource {
				t.Errorf("Expected source %q, got %q", tt.wantSource, cfg.Source)
			}
		})
	}
}

func TestDiscoverRequired(t *testing.T) {
	_, err := Discover(DiscoveryOptions{
		Paths:    []string{filepath.Join(t.TempDir(), "none.toml")},
		Lookup:   envMap(nil),
		Required: true,
	})
	if !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
		t.Errorf("Expected CodeMissingConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantKey string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad level", func(c *Config) { c.General.LogLevel = "loud" }, "general.log_level"},
		{"bad log format", func(c *Config) { c.General.LogFormat = "xml" }, "general.log_format"},
		{"negative size", func(c *Config) { c.Parser.MaxSourceBytes = -1 }, "parser.max_source_bytes"},
		{"bad output", func(c *Config) { c.Output.Format = "html" }, "output.format"},
		{"bad addr", func(c *Config) { c.Playground.Addr = "localhost" }, "playground.addr"},
		{"negative message size", func(c *Config) { c.Playground.MaxMessageBytes = -5 }, "playground.max_message_bytes"},
		{"negative cache ttl", func(c *Config) { c.Playground.CacheTTL.Duration = -time.Second }, "playground.cache_ttl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantKey == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}

			mdwErr, ok := mdwerror.As(err)
			if !ok {
				t.Fatalf("Expected *mdwerror.Error, got %v", err)
			}
			if mdwErr.Code() != mdwerror.CodeInvalidConfig {
				t.Errorf("Expected CodeInvalidConfig, got %s", mdwErr.Code())
			}
			if got := mdwErr.DetailString("key"); got != tt.wantKey {
				t.Errorf("Expected key %s, got %s", tt.wantKey, got)
			}
		})
	}
}
