// File: validation.go
// Title: Configuration Validation
// Description: Checks the typed configuration for unknown enum values and
//              out of range sizes.
// Author: fynk authors
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with rule based validation
// - 2026-10-19 v0.2.0: Validation of typed fields

package config

import (
	"fmt"
	"net"
	"strings"

	mdwerror "github.com/fynk-lang/fynk/foundation/core/error"
	mdwlog "github.com/fynk-lang/fynk/foundation/core/log"
)

// OutputFormats lists the accepted values of output.format
var OutputFormats = []string{"json", "yaml", "tree"}

// Validate returns the first invalid value as a CodeInvalidConfig error
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err.Error())
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err.Error())
	}
	if c.Parser.MaxSourceBytes < 0 {
		return invalid("parser.max_source_bytes", c.Parser.MaxSourceBytes, "must not be negative")
	}
	if !isOutputFormat(c.Output.Format) {
		return invalid("output.format", c.Output.Format,
			"must be one of "+strings.Join(OutputFormats, ", "))
	}
	if _, _, err := net.SplitHostPort(c.Playground.Addr); err != nil {
		return invalid("playground.addr", c.Playground.Addr, err.Error())
	}
	if c.Playground.ReadTimeout.Duration < 0 {
		return invalid("playground.read_timeout", c.Playground.ReadTimeout.String(), "must not be negative")
	}
	if c.Playground.MaxMessageBytes < 0 {
		return invalid("playground.max_message_bytes", c.Playground.MaxMessageBytes, "must not be negative")
	}
	if c.Playground.CacheTTL.Duration < 0 {
		return invalid("playground.cache_ttl", c.Playground.CacheTTL.String(), "must not be negative")
	}
	return nil
}

func isOutputFormat(format string) bool {
	for _, f := range OutputFormats {
		if f == format {
			return true
		}
	}
	return false
}

func invalid(key string, value interface{}, reason string) error {
	return mdwerror.New(fmt.Sprintf("invalid value for %s: %s", key, reason)).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
}
