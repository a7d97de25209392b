// File: stream.go
// Title: Token Stream
// Description: Immutable token sequence with a forward-only read index and
//              safe lookahead past the end.
// Author: fynk authors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial stream implementation

package token

// Stream is the materialized output of one lexer run.
// It is not safe for concurrent use.
type Stream struct {
	tokens   []Token
	filePath string
	index    int
}

// EndOfStream returns the synthetic EOF at -1:-1 that Current and Peek
// return once the index passes the last token
func EndOfStream() Token {
	return Token{Kind: EOF, Value: "", Line: -1, Column: -1}
}

// NewStream creates a stream over a copy of tokens
func NewStream(filePath string, tokens []Token) *Stream {
	owned := make([]Token, len(tokens))
	copy(owned, tokens)
	return &Stream{tokens: owned, filePath: filePath}
}

// Current returns the token at the read index
func (s *Stream) Current() Token {
	return s.Peek(0)
}

// Peek returns the token distance positions after the read index
func (s *Stream) Peek(distance int) Token {
	i := s.index + distance
	if i < 0 || i >= len(s.tokens) {
		return EndOfStream()
	}
	return s.tokens[i]
}

// Advance moves the read index forward by one.
// Once past the last token further calls are no-ops.
func (s *Stream) Advance() {
	if s.index < len(s.tokens) {
		s.index++
	}
}

// FilePath returns the path label used in diagnostics
func (s *Stream) FilePath() string {
	return s.filePath
}

// Index returns the current read index
func (s *Stream) Index() int {
	return s.index
}

// Len returns the number of tokens, including the final EOF
func (s *Stream) Len() int {
	return len(s.tokens)
}

// Tokens returns a copy of the token sequence
func (s *Stream) Tokens() []Token {
	out := make([]Token, len(s.tokens))
	copy(out, s.tokens)
	return out
}
