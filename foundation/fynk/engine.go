// File: engine.go
// Title: Fynk Engine
// Description: High level interface over the lexer and parser. Applies the
//              source size limit, reads files, tags each run with a run id
//              and times it, and fans diagnostics out to the configured sink.
// Author: fynk authors
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial high-level engine implementation
// - 2026-10-19 v0.2.0: Fynk tokenize/parse/check runs

package fynk

import (
	"errors"
	"io/fs"
	"os"

	"github.com/google/uuid"

	"github.com/fynk-lang/fynk/foundation/core/config"
	mdwerror "github.com/fynk-lang/fynk/foundation/core/error"
	mdwlog "github.com/fynk-lang/fynk/foundation/core/log"
	mdwast "github.com/fynk-lang/fynk/foundation/fynk/ast"
	"github.com/fynk-lang/fynk/foundation/fynk/diag"
	"github.com/fynk-lang/fynk/foundation/fynk/parser"
	"github.com/fynk-lang/fynk/foundation/fynk/token"
	"github.com/fynk-lang/fynk/foundation/utils/filex"
)

// Options configures the engine
type Options struct {
	Logger *mdwlog.Logger

	// Sink receives every diagnostic the engine produces; nil discards them
	Sink diag.Sink

	// MaxSourceBytes rejects larger sources; 0 means config.DefaultMaxSourceBytes
	// and a negative value disables the check
	MaxSourceBytes int64

	InequalityOnly bool
	MaxDepth       int
}

// OptionsFromConfig derives engine options from a loaded configuration
func OptionsFromConfig(cfg *config.Config, logger *mdwlog.Logger) Options {
	return Options{
		Logger:         logger,
		MaxSourceBytes: cfg.Parser.MaxSourceBytes,
		InequalityOnly: cfg.Parser.InequalityOnly,
	}
}

// Engine runs the Fynk front end. It holds no per-run state and is safe for
// concurrent use as long as its sink is.
type Engine struct {
	logger  *mdwlog.Logger
	sink    diag.Sink
	options Options
}

// Result is the outcome of Check
type Result struct {
	RunID       string
	File        string
	Tokens      *token.Stream
	Program     *mdwast.Program
	Diagnostics []diag.Diagnostic
}

// OK reports whether the run produced no diagnostics
func (r *Result) OK() bool {
	return len(r.Diagnostics) == 0
}

// New creates an engine
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Sink == nil {
		opts.Sink = diag.Discard
	}
	if opts.MaxSourceBytes == 0 {
		opts.MaxSourceBytes = config.DefaultMaxSourceBytes
	}

	return &Engine{
		logger:  opts.Logger.WithField("component", "fynk-engine"),
		sink:    opts.Sink,
		options: opts,
	}
}

// Tokenize lexes src completely
func (e *Engine) Tokenize(file, src string) (*token.Stream, error) {
	run := e.begin(file, "tokenize")
	return e.tokenize(run, e.sink, file, src)
}

// Parse lexes and parses src
func (e *Engine) Parse(file, src string) (*mdwast.Program, error) {
	run := e.begin(file, "parse")
	_, prog, err := e.parse(run, e.sink, file, src)
	return prog, err
}

// ParseFile reads and parses the file at path
func (e *Engine) ParseFile(path string) (*mdwast.Program, error) {
	src, err := e.ReadSource(path)
	if err != nil {
		return nil, err
	}
	return e.Parse(path, src)
}

// Check parses src and collects its diagnostics instead of returning them as
// an error. Non-diagnostic failures such as an oversized source are returned.
func (e *Engine) Check(file, src string) (*Result, error) {
	run := e.begin(file, "check")

	var collector diag.Collector
	tokens, prog, err := e.parse(run, diag.Multi(e.sink, &collector), file, src)

	result := &Result{
		RunID:       run.id,
		File:        file,
		Tokens:      tokens,
		Program:     prog,
		Diagnostics: collector.Diagnostics(),
	}
	if err != nil && !mdwerror.GetCode(err).IsDiagnostic() {
		return result, err
	}
	return result, nil
}

// ReadSource reads a source file, applying the size limit
func (e *Engine) ReadSource(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", e.readError(path, err)
	}
	if err := e.checkSize(path, info.Size()); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", e.readError(path, err)
	}
	return string(data), nil
}

type run struct {
	id     string
	logger *mdwlog.Logger
	timer  *mdwlog.Timer
}

func (e *Engine) begin(file, operation string) *run {
	id := uuid.NewString()
	logger := e.logger.WithCorrelationID(id).WithField("file", file)
	return &run{
		id:     id,
		logger: logger,
		timer:  logger.StartTimer("fynk." + operation),
	}
}

func (e *Engine) tokenize(r *run, sink diag.Sink, file, src string) (*token.Stream, error) {
	if err := e.checkSize(file, int64(len(src))); err != nil {
		r.timer.StopWithError(err)
		return nil, err
	}

	tokens, err := parser.Tokenize(file, src, sink)
	if err != nil {
		r.timer.StopWithError(err)
		return nil, err
	}

	r.timer.WithField("tokens", tokens.Len()).Stop()
	return tokens, nil
}

func (e *Engine) parse(r *run, sink diag.Sink, file, src string) (*token.Stream, *mdwast.Program, error) {
	if err := e.checkSize(file, int64(len(src))); err != nil {
		r.timer.StopWithError(err)
		return nil, nil, err
	}

	tokens, err := parser.Tokenize(file, src, sink)
	if err != nil {
		r.timer.StopWithError(err)
		return nil, nil, err
	}

	prog, err := parser.Parse(tokens, parser.Options{
		Sink:           sink,
		InequalityOnly: e.options.InequalityOnly,
		MaxDepth:       e.options.MaxDepth,
		Logger:         r.logger,
	})
	if err != nil {
		r.timer.StopWithError(err)
		return tokens, nil, err
	}

	r.timer.WithField("statements", len(prog.Body)).Stop()
	return tokens, prog, nil
}

func (e *Engine) checkSize(file string, size int64) error {
	limit := e.options.MaxSourceBytes
	if limit < 0 || size <= limit {
		return nil
	}
	return mdwerror.Newf("source is %s, limit is %s", filex.FormatSize(size), filex.FormatSize(limit)).
		WithCode(mdwerror.CodeSourceTooLarge).
		WithOperation("fynk.ReadSource").
		WithDetail("file", file).
		WithDetail("size", size).
		WithDetail("limit", limit)
}

func (e *Engine) readError(path string, err error) error {
	code := mdwerror.CodeSourceRead
	if errors.Is(err, fs.ErrNotExist) {
		code = mdwerror.CodeNotFound
	}
	return mdwerror.Wrap(err, "failed to read source").
		WithCode(code).
		WithOperation("fynk.ReadSource").
		WithDetail("file", path)
}
