// File: config.go
// Title: Typed Configuration
// Description: Config struct, defaults and file loading for TOML and YAML.
// Author: fynk authors
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Replaced the generic key map with typed sections

package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/fynk-lang/fynk/foundation/core/error"
	mdwstringx "github.com/fynk-lang/fynk/foundation/utils/stringx"
)

const (
	// DefaultMaxSourceBytes caps the size of a single source file
	DefaultMaxSourceBytes int64 = 1 << 20

	// DefaultPlaygroundAddr is the listen address of `fynk serve`
	DefaultPlaygroundAddr = "127.0.0.1:7420"

	// DefaultMaxMessageBytes caps a single websocket message
	DefaultMaxMessageBytes int64 = 256 << 10

	// DefaultReadTimeout is the websocket idle read deadline
	DefaultReadTimeout = 60 * time.Second

	// DefaultCacheSize is the number of playground results kept
	DefaultCacheSize = 256

	// DefaultCacheTTL is how long a playground result stays cached
	DefaultCacheTTL = 5 * time.Minute
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds the complete fynk configuration
type Config struct {
	General    GeneralConfig    `toml:"general" yaml:"general"`
	Parser     ParserConfig     `toml:"parser" yaml:"parser"`
	Output     OutputConfig     `toml:"output" yaml:"output"`
	Playground PlaygroundConfig `toml:"playground" yaml:"playground"`

	// Path of the file the configuration was loaded from, empty for defaults
	Source string `toml:"-" yaml:"-"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ParserConfig holds front end settings
type ParserConfig struct {
	MaxSourceBytes int64 `toml:"max_source_bytes" yaml:"max_source_bytes"`
	InequalityOnly bool  `toml:"inequality_only" yaml:"inequality_only"`
}

// OutputConfig holds rendering settings for the CLI
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Color  *bool  `toml:"color" yaml:"color"`
}

// PlaygroundConfig holds the websocket playground settings
type PlaygroundConfig struct {
	Addr            string   `toml:"addr" yaml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout" yaml:"read_timeout"`
	MaxMessageBytes int64    `toml:"max_message_bytes" yaml:"max_message_bytes"`

	// CacheSize bounds the result cache; negative disables it
	CacheSize int      `toml:"cache_size" yaml:"cache_size"`
	CacheTTL  Duration `toml:"cache_ttl" yaml:"cache_ttl"`
}

// ColorEnabled reports whether colored output is on; unset means true
func (o OutputConfig) ColorEnabled() bool {
	return o.Color == nil || *o.Color
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a file, detecting the format from its extension
func Load(path string) (*Config, error) {
	return LoadWithFormat(path, FormatAuto)
}

// LoadWithFormat loads configuration from a file in the given format
func LoadWithFormat(path string, format Format) (*Config, error) {
	if mdwstringx.IsBlank(path) {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.Load")
	}

	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeMissingConfig
		}
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(code).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	if format == FormatAuto {
		format = detectFormat(path)
	}

	var cfg Config
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &cfg)
	default:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path).
			WithDetail("format", format.String())
	}

	cfg.Source = path
	cfg.applyDefaults()

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	// Parser
	if c.Parser.MaxSourceBytes == 0 {
		c.Parser.MaxSourceBytes = DefaultMaxSourceBytes
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = "json"
	}

	// Playground
	if c.Playground.Addr == "" {
		c.Playground.Addr = DefaultPlaygroundAddr
	}
	if c.Playground.ReadTimeout.Duration == 0 {
		c.Playground.ReadTimeout.Duration = DefaultReadTimeout
	}
	if c.Playground.MaxMessageBytes == 0 {
		c.Playground.MaxMessageBytes = DefaultMaxMessageBytes
	}
	if c.Playground.CacheSize == 0 {
		c.Playground.CacheSize = DefaultCacheSize
	}
	if c.Playground.CacheTTL.Duration == 0 {
		c.Playground.CacheTTL.Duration = DefaultCacheTTL
	}
}
