// ============================================================================
// fynk - Fynk language front end
// ============================================================================
//
// Package:     render
// Description: Diagnostic rendering with a source excerpt and caret, and a
//              diag.Sink that writes rendered diagnostics to a terminal
// Author:      fynk authors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package render

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fynk-lang/fynk/foundation/fynk/diag"
	mdwstringx "github.com/fynk-lang/fynk/foundation/utils/stringx"
)

// MaxExcerptWidth bounds the source line shown under a diagnostic
const MaxExcerptWidth = 120

// Diagnostic renders d. When src holds the diagnosed source, the offending
// line is shown with a caret under the reported column.
func Diagnostic(d diag.Diagnostic, src string, styles Styles) string {
	var b strings.Builder

	location := fmt.Sprintf("%s:%d:%d", fileLabel(d.File), d.Line, d.Column)
	b.WriteString(styles.Location.Render(location))
	b.WriteString(": ")
	b.WriteString(styles.Error.Render(d.Message))

	if excerpt := excerpt(d, src, styles); excerpt != "" {
		b.WriteString("\n")
		b.WriteString(excerpt)
	}

	if d.Hint != "" {
		b.WriteString("\n")
		b.WriteString(styles.Hint.Render("  hint: " + d.Hint))
	}

	return b.String()
}

func excerpt(d diag.Diagnostic, src string, styles Styles) string {
	if src == "" || d.Line < 1 || d.Column < 0 {
		return ""
	}
	if d.Line > strings.Count(src, "\n")+1 {
		return ""
	}

	line := strings.TrimRight(mdwstringx.SourceLine(src, d.Line), "\r")
	runes := []rune(line)
	if d.Column > len(runes) || d.Column >= MaxExcerptWidth {
		return ""
	}
	line = mdwstringx.Truncate(line, MaxExcerptWidth, "...")

	// Tabs before the caret are kept so it lines up with the source
	var caret strings.Builder
	for _, r := range runes[:d.Column] {
		if r == '\t' {
			caret.WriteRune('\t')
		} else {
			caret.WriteRune(' ')
		}
	}

	number := fmt.Sprintf("%d", d.Line)
	gutter := strings.Repeat(" ", len(number))

	return fmt.Sprintf("%s %s\n%s %s",
		styles.Gutter.Render(" "+number+" |"),
		line,
		styles.Gutter.Render(" "+gutter+" |"),
		caret.String()+styles.Caret.Render("^"),
	)
}

func fileLabel(file string) string {
	if file == "" {
		return "<input>"
	}
	return file
}

// TerminalSink writes rendered diagnostics to a writer. Sources registered
// with AddSource are used for excerpts.
type TerminalSink struct {
	mu      sync.Mutex
	out     io.Writer
	styles  Styles
	sources map[string]string
	count   int
}

// NewTerminalSink creates a sink writing to out
func NewTerminalSink(out io.Writer, styles Styles) *TerminalSink {
	return &TerminalSink{
		out:     out,
		styles:  styles,
		sources: make(map[string]string),
	}
}

// AddSource registers the text of file for excerpts
func (s *TerminalSink) AddSource(file, src string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources[file] = src
}

// Report implements diag.Sink
func (s *TerminalSink) Report(d diag.Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	fmt.Fprintln(s.out, Diagnostic(d, s.sources[d.File], s.styles))
}

// Count returns the number of diagnostics written
func (s *TerminalSink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
