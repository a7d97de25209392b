// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads the typed fynk configuration from TOML or
//              YAML files with environment overrides and validation.
// Author: fynk authors
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: Typed configuration for the fynk toolchain

/*
Package config provides the configuration for the fynk command line tools.

The configuration is a typed struct with four sections:

	[general]
	log_level  = "warn"      # trace, debug, info, warn, error, fatal
	log_format = "console"   # json, text, console, logfmt

	[parser]
	max_source_bytes = 1048576
	inequality_only  = false

	[output]
	format = "json"          # json, yaml, tree
	color  = true

	[playground]
	addr              = "127.0.0.1:7420"
	read_timeout      = "60s"
	max_message_bytes = 262144

Files ending in .yaml or .yml are decoded as YAML, everything else as TOML.
Values missing from the file fall back to the defaults shown above.

# Loading

	cfg, err := mdwconfig.Load("fynk.toml")

Discover searches the standard locations and returns the defaults when no file
exists:

	cfg, err := mdwconfig.Discover(mdwconfig.DefaultDiscoveryOptions())

# Environment Overrides

After a file is decoded the following variables override its values:
FYNK_LOG_LEVEL, FYNK_LOG_FORMAT, FYNK_MAX_SOURCE_BYTES, FYNK_INEQUALITY_ONLY,
FYNK_OUTPUT_FORMAT and FYNK_PLAYGROUND_ADDR.

# Validation

Validate reports the first invalid value as an *mdwerror.Error with code
CodeInvalidConfig and the offending key in the "key" detail.
*/
package config
