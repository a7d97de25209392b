// File: discovery.go
// Title: Configuration File Discovery
// Description: Finds the configuration file in the standard locations and
//              falls back to defaults when none exists.
// Author: fynk authors
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-19 v0.2.0: FYNK_CONFIG and home directory lookup

package config

import (
	"os"
	"path/filepath"

	mdwerror "github.com/fynk-lang/fynk/foundation/core/error"
)

// DiscoveryOptions defines where Discover looks for a configuration file
type DiscoveryOptions struct {
	Explicit string     // Path given on the command line, wins over everything
	Paths    []string   // Candidate files in priority order
	Lookup   LookupFunc // Environment lookup, os.LookupEnv when nil
	Required bool       // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the standard search order
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"./fynk.toml", "./fynk.yaml", "./fynk.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "fynk", "config.toml"))
	}
	return DiscoveryOptions{
		Paths:  paths,
		Lookup: os.LookupEnv,
	}
}

// Discover loads the first configuration file found.
// An explicit path or FYNK_CONFIG must exist; the standard locations are optional.
func Discover(options DiscoveryOptions) (*Config, error) {
	lookup := options.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if options.Explicit != "" {
		return LoadWithFormat(options.Explicit, FormatAuto)
	}
	if path, ok := lookup(EnvConfig); ok && path != "" {
		return LoadWithFormat(path, FormatAuto)
	}

	if path, ok := FindConfigFile(options.Paths); ok {
		cfg, err := LoadWithFormat(path, FormatAuto)
		if err != nil {
			return nil, mdwerror.Wrap(err, "found config file but failed to load").
				WithOperation("config.Discover").
				WithDetail("path", path)
		}
		return cfg, nil
	}

	if options.Required {
		return nil, mdwerror.New("no configuration file found").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.Discover").
			WithDetail("searchPaths", options.Paths)
	}

	cfg := Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfigFile returns the first existing regular file in paths
func FindConfigFile(paths []string) (string, bool) {
	for _, path := range paths {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
