// Package log provides structured logging for the Fynk toolchain.
//
// Package: log
// Title: Fynk Structured Logging
// Description: Leveled, structured logging with immutable context cloning,
//              JSON/text/console/logfmt output and operation timers. Logs go
//              to stderr by default so command output on stdout stays clean.
// Author: fynk authors
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Correlation ids per front-end run, stderr default, sorted text fields
//
// Usage:
//
//	import mdwlog "github.com/fynk-lang/fynk/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatConsole).
//		WithField("component", "fynk-parser")
//
//	timer := logger.StartTimer("parse")
//	defer timer.Stop()
//	logger.Debug("parsing", mdwlog.Fields{"file": "main.fynk"})
package log
