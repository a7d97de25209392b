// File: diag.go
// Title: Fynk Diagnostics
// Description: The diagnostic record reported for fatal lexical and syntax
//              errors, the Sink interface that receives it, and the error
//              value returned to Go callers.
// Author: fynk authors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial diagnostics and sinks

// Package diag carries fatal front end diagnostics to a reporting sink.
package diag

import (
	"fmt"
	"strings"
	"sync"

	mdwerror "github.com/fynk-lang/fynk/foundation/core/error"
	mdwlog "github.com/fynk-lang/fynk/foundation/core/log"
)

// Message prefixes
const (
	LexerPrefix  = "LexerError: "
	ParserPrefix = "ParserError: "
)

// Diagnostic is a single fatal error report
type Diagnostic struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

// String formats the diagnostic as file:line:column: message
func (d Diagnostic) String() string {
	var b strings.Builder
	if d.File != "" {
		b.WriteString(d.File)
		b.WriteByte(':')
	}
	fmt.Fprintf(&b, "%d:%d: %s", d.Line, d.Column, d.Message)
	if d.Hint != "" {
		b.WriteString(" (")
		b.WriteString(d.Hint)
		b.WriteByte(')')
	}
	return b.String()
}

// IsLexical reports whether the diagnostic came from the lexer
func (d Diagnostic) IsLexical() bool {
	return strings.HasPrefix(d.Message, LexerPrefix)
}

// Err converts the diagnostic into the error returned by tokenize and parse
func (d Diagnostic) Err() *mdwerror.Error {
	code := mdwerror.CodeSyntax
	op := "parser.Parse"
	if d.IsLexical() {
		code = mdwerror.CodeLexical
		op = "parser.Tokenize"
	}
	return mdwerror.New(d.Message).
		WithCode(code).
		WithOperation(op).
		WithDetail("file", d.File).
		WithDetail("line", d.Line).
		WithDetail("column", d.Column).
		WithDetail("hint", d.Hint)
}

// FromError recovers the diagnostic from an error returned by tokenize or parse
func FromError(err error) (Diagnostic, bool) {
	e, ok := mdwerror.As(err)
	if !ok || !e.Code().IsDiagnostic() {
		return Diagnostic{}, false
	}
	return Diagnostic{
		File:    e.DetailString("file"),
		Line:    e.DetailInt("line", 0),
		Column:  e.DetailInt("column", 0),
		Message: e.Message(),
		Hint:    e.DetailString("hint"),
	}, true
}

// Sink receives fatal diagnostics. The reporting call is followed by the
// tokenize or parse call returning the diagnostic as an error; a sink never
// has to stop the process itself.
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to the Sink interface
type SinkFunc func(d Diagnostic)

// Report calls f(d)
func (f SinkFunc) Report(d Diagnostic) {
	f(d)
}

// Discard is a Sink that drops every diagnostic
var Discard Sink = SinkFunc(func(Diagnostic) {})

// Collector records every diagnostic it receives. It is safe for concurrent use.
type Collector struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
}

// Report records d
func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diagnostics = append(c.diagnostics, d)
}

// Diagnostics returns a copy of the recorded diagnostics
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.diagnostics))
	copy(out, c.diagnostics)
	return out
}

// Len returns the number of recorded diagnostics
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diagnostics)
}

// Reset drops every recorded diagnostic
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diagnostics = nil
}

// LogSink writes each diagnostic as a structured warning
type LogSink struct {
	logger *mdwlog.Logger
}

// NewLogSink creates a sink logging through logger, or the default logger when nil
func NewLogSink(logger *mdwlog.Logger) *LogSink {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	return &LogSink{logger: logger.WithField("component", "diag")}
}

// Report logs d at warn level
func (s *LogSink) Report(d Diagnostic) {
	s.logger.Warn(d.Message, mdwlog.Fields{
		"file":   d.File,
		"line":   d.Line,
		"column": d.Column,
		"hint":   d.Hint,
	})
}

// Multi fans a diagnostic out to several sinks in order
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(d Diagnostic) {
		for _, s := range sinks {
			if s != nil {
				s.Report(d)
			}
		}
	})
}
