// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context cloning, level
//              filtering and structured error integration.
// Author: fynk authors
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2026-10-19 v0.2.0: Correlation id and LogError severity mapping tests

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/fynk-lang/fynk/foundation/core/error"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON log line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}

	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}

	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "test-logger",
	})

	if logger.GetLevel() != LevelError {
		t.Errorf("NewWithConfig() level = %v, want %v", logger.GetLevel(), LevelError)
	}

	if logger.name != "test-logger" {
		t.Errorf("NewWithConfig() name = %v, want test-logger", logger.name)
	}

	if logger.output != &buf {
		t.Error("NewWithConfig() should set custom output")
	}
}

func TestLoggerWithLevel(t *testing.T) {
	logger := New()
	newLogger := logger.WithLevel(LevelDebug)

	if newLogger == logger {
		t.Error("WithLevel() should return a new logger instance")
	}

	if newLogger.GetLevel() != LevelDebug {
		t.Errorf("WithLevel() level = %v, want %v", newLogger.GetLevel(), LevelDebug)
	}

	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify original logger")
	}
}

func TestLoggerWithFieldDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithConfig(Config{Level: LevelInfo, Output: &buf})
	child := base.WithField("component", "lexer")

	base.Info("from base")
	child.Info("from child")

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if _, ok := lines[0]["component"]; ok {
		t.Error("Expected base logger to have no component field")
	}
	if lines[1]["component"] != "lexer" {
		t.Errorf("Expected component=lexer, got %v", lines[1]["component"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	tests := []struct {
		name     string
		minLevel Level
		log      func(l *Logger)
		want     bool
	}{
		{"debug below info", LevelInfo, func(l *Logger) { l.Debug("x") }, false},
		{"info at info", LevelInfo, func(l *Logger) { l.Info("x") }, true},
		{"warn above info", LevelInfo, func(l *Logger) { l.Warn("x") }, true},
		{"trace at trace", LevelTrace, func(l *Logger) { l.Trace("x") }, true},
		{"error below fatal", LevelFatal, func(l *Logger) { l.Error("x") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewWithConfig(Config{Level: tt.minLevel, Output: &buf}))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("Expected output=%v, got %v (%q)", tt.want, got, buf.String())
			}
		})
	}
}

func TestLoggerCorrelationAndName(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Output: &buf}).
		WithName("engine").
		WithCorrelationID("run-1")

	logger.Info("parsed", Fields{"tokens": 3})

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	entry := lines[0]
	if entry["logger"] != "engine" {
		t.Errorf("Expected logger=engine, got %v", entry["logger"])
	}
	if entry["correlation_id"] != "run-1" {
		t.Errorf("Expected correlation_id=run-1, got %v", entry["correlation_id"])
	}
	if entry["tokens"] != float64(3) {
		t.Errorf("Expected tokens=3, got %v", entry["tokens"])
	}
	if entry["level"] != "info" {
		t.Errorf("Expected level=info, got %v", entry["level"])
	}
}

func TestLoggerErrorWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Output: &buf})

	logger.ErrorWithErr("read failed", errors.New("boom"))

	lines := decodeLines(t, &buf)
	if lines[0]["error"] != "boom" {
		t.Errorf("Expected error=boom, got %v", lines[0]["error"])
	}
}

func TestLoggerLogErrorSeverityMapping(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"syntax is low", mdwerror.New("bad").WithCode(mdwerror.CodeSyntax), "info"},
		{"read is medium", mdwerror.New("io").WithCode(mdwerror.CodeSourceRead), "warn"},
		{"internal is high", mdwerror.New("bug").WithCode(mdwerror.CodeInternal), "error"},
		{"plain error", errors.New("plain"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithConfig(Config{Level: LevelTrace, Output: &buf})
			logger.LogError(tt.err)

			lines := decodeLines(t, &buf)
			if len(lines) != 1 {
				t.Fatalf("Expected 1 line, got %d", len(lines))
			}
			if lines[0]["level"] != tt.wantLevel {
				t.Errorf("Expected level %s, got %v", tt.wantLevel, lines[0]["level"])
			}
		})
	}
}

func TestLoggerLogErrorNil(t *testing.T) {
	var buf bytes.Buffer
	NewWithConfig(Config{Level: LevelTrace, Output: &buf}).LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("Expected no output for nil error, got %q", buf.String())
	}
}

func TestLoggerWithCaller(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelInfo, Output: &buf}).WithCaller(0)

	logger.Info("here")

	lines := decodeLines(t, &buf)
	caller, _ := lines[0]["caller"].(string)
	if !strings.HasPrefix(caller, "logger_test.go:") {
		t.Errorf("Expected caller in logger_test.go, got %q", caller)
	}
}

func TestSetLevel(t *testing.T) {
	logger := New()
	logger.SetLevel(LevelDebug)
	if !logger.IsLevelEnabled(LevelDebug) {
		t.Error("Expected debug to be enabled after SetLevel")
	}
	if logger.IsLevelEnabled(LevelTrace) {
		t.Error("Expected trace to stay disabled")
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	custom := New().WithName("custom")
	SetDefault(custom)
	if GetDefault() != custom {
		t.Error("Expected SetDefault to replace the default logger")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Expected Discard logger to disable every level")
	}
}
