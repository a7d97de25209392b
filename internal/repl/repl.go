// ============================================================================
// fynk - Fynk language front end
// ============================================================================
//
// Package:     repl
// Description: Line-oriented read-parse-print loop behind `fynk repl`.
//              Input that ends mid-statement is continued on the next line.
// Author:      fynk authors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/fynk-lang/fynk/foundation/fynk"
	"github.com/fynk-lang/fynk/internal/render"
)

const (
	// File labels diagnostics of REPL input
	File = "<repl>"

	PromptMain = "fynk> "
	PromptCont = "  ... "

	// FormatTokens prints the token table instead of the AST
	FormatTokens = "tokens"
)

// LineReader reads one line per prompt. *liner.State implements it.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Config holds REPL settings
type Config struct {
	Format string
	Styles render.Styles
}

// REPL parses each complete input and prints the result
type REPL struct {
	engine *fynk.Engine
	out    io.Writer
	errOut io.Writer
	format string
	styles render.Styles
}

// New creates a REPL writing results to out and diagnostics to errOut
func New(engine *fynk.Engine, out, errOut io.Writer, cfg Config) *REPL {
	if cfg.Format == "" {
		cfg.Format = render.FormatTree
	}
	return &REPL{
		engine: engine,
		out:    out,
		errOut: errOut,
		format: cfg.Format,
		styles: cfg.Styles,
	}
}

// Format returns the current output format
func (r *REPL) Format() string {
	return r.format
}

// Run reads inputs until end of input or :quit
func (r *REPL) Run(in LineReader) error {
	for {
		src, result, err := r.read(in)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out)
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(src)
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, ":"):
			if quit := r.command(trimmed); quit {
				return nil
			}
			continue
		}

		r.print(src, result)
		in.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// read collects lines until they form a complete input
func (r *REPL) read(in LineReader) (string, *fynk.Result, error) {
	var b strings.Builder
	for {
		prompt := PromptMain
		if b.Len() > 0 {
			prompt = PromptCont
		}

		line, err := in.Prompt(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) && b.Len() > 0 {
				src := b.String()
				result, checkErr := r.engine.Check(File, src)
				return src, r.withError(result, checkErr), nil
			}
			return "", nil, err
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		trimmed := strings.TrimSpace(src)
		if trimmed == "" || strings.HasPrefix(trimmed, ":") {
			return src, nil, nil
		}

		result, err := r.engine.Check(File, src)
		if err == nil && Incomplete(result) {
			continue
		}
		return src, r.withError(result, err), nil
	}
}

func (r *REPL) withError(result *fynk.Result, err error) *fynk.Result {
	if err != nil {
		fmt.Fprintln(r.errOut, r.styles.Error.Render(err.Error()))
		return nil
	}
	return result
}

func (r *REPL) print(src string, result *fynk.Result) {
	if result == nil {
		return
	}
	if !result.OK() {
		for _, d := range result.Diagnostics {
			fmt.Fprintln(r.errOut, render.Diagnostic(d, src, r.styles))
		}
		return
	}

	if r.format == FormatTokens {
		fmt.Fprint(r.out, render.TokenTable(result.Tokens.Tokens(), r.styles))
		return
	}
	if err := render.WriteProgram(r.out, result.Program, r.format); err != nil {
		fmt.Fprintln(r.errOut, r.styles.Error.Render(err.Error()))
	}
}

// command runs a :command and reports whether the REPL should stop
func (r *REPL) command(input string) bool {
	fields := strings.Fields(input)
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":format":
		if len(fields) != 2 || !isFormat(fields[1]) {
			fmt.Fprintln(r.errOut, "usage: :format json|yaml|tree|tokens")
			return false
		}
		r.format = fields[1]
		fmt.Fprintf(r.out, "format: %s\n", r.format)
	case ":help":
		fmt.Fprintln(r.out, ":format json|yaml|tree|tokens  change the output")
		fmt.Fprintln(r.out, ":quit                          leave the repl")
	default:
		fmt.Fprintf(r.errOut, "unknown command %s, type :help\n", fields[0])
	}
	return false
}

func isFormat(format string) bool {
	switch format {
	case render.FormatJSON, render.FormatYAML, render.FormatTree, FormatTokens:
		return true
	}
	return false
}

// Incomplete reports whether a failed run stopped at the end of input, so
// more lines could complete it
func Incomplete(result *fynk.Result) bool {
	if result == nil || result.OK() {
		return false
	}

	d := result.Diagnostics[0]
	if d.IsLexical() {
		return strings.Contains(d.Message, "Unclosed string literal")
	}
	if result.Tokens == nil || result.Tokens.Len() == 0 {
		return false
	}

	tokens := result.Tokens.Tokens()
	eof := tokens[len(tokens)-1]
	return d.Line == eof.Line && d.Column == eof.Column
}
