package config

import (
	"strconv"
	"strings"

	mdwerror "github.com/fynk-lang/fynk/foundation/core/error"
)

// Environment variables that override file values
const (
	EnvConfig         = "FYNK_CONFIG"
	EnvLogLevel       = "FYNK_LOG_LEVEL"
	EnvLogFormat      = "FYNK_LOG_FORMAT"
	EnvMaxSourceBytes = "FYNK_MAX_SOURCE_BYTES"
	EnvInequalityOnly = "FYNK_INEQUALITY_ONLY"
	EnvOutputFormat   = "FYNK_OUTPUT_FORMAT"
	EnvPlaygroundAddr = "FYNK_PLAYGROUND_ADDR"
)

// LookupFunc has the signature of os.LookupEnv
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides configuration values from the environment
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.General.LogLevel = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.General.LogFormat = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvOutputFormat); ok && v != "" {
		c.Output.Format = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvPlaygroundAddr); ok && v != "" {
		c.Playground.Addr = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvMaxSourceBytes); ok && v != "" {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return envError(EnvMaxSourceBytes, v, err)
		}
		c.Parser.MaxSourceBytes = n
	}

	if v, ok := lookup(EnvInequalityOnly); ok && v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return envError(EnvInequalityOnly, v, err)
		}
		c.Parser.InequalityOnly = b
	}

	return nil
}

func envError(key, value string, err error) error {
	return mdwerror.Wrap(err, "invalid environment override").
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.ApplyEnv").
		WithDetail("key", key).
		WithDetail("value", value)
}
