// File: lexer.go
// Title: Fynk Lexical Analyzer (Tokenizer)
// Description: Converts Fynk source text into a token stream. Handles
//              comments, numbers, strings with escapes, identifiers and
//              keywords, and longest-match operators. The first lexical
//              error is reported to the diagnostic sink and ends the run.
// Author: fynk authors
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-19 v0.2.0: Rune cursor, typed token values and sink reporting

package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/fynk-lang/fynk/foundation/fynk/diag"
	"github.com/fynk-lang/fynk/foundation/fynk/token"
)

// twoCharOperators must be matched before their one character prefixes
var twoCharOperators = map[[2]rune]token.Kind{
	{'=', '='}: token.EQUAL,
	{'!', '='}: token.NOT_EQUAL,
	{'<', '='}: token.LESS_THAN_OR_EQUAL,
	{'>', '='}: token.GREATER_THAN_OR_EQUAL,
	{'+', '+'}: token.INCREMENT,
	{'-', '-'}: token.DECREMENT,
}

var oneCharOperators = map[rune]token.Kind{
	'+': token.PLUS,
	'-': token.MINUS,
	'*': token.MULTIPLY,
	'/': token.DIVIDE,
	'=': token.ASSIGN,
	'<': token.LESS_THAN,
	'>': token.GREATER_THAN,
	'&': token.AND,
	'|': token.OR,
	'!': token.NOT,
	'(': token.LEFT_PAREN,
	')': token.RIGHT_PAREN,
	'{': token.LEFT_BRACE,
	'}': token.RIGHT_BRACE,
	'[': token.LEFT_BRACKET,
	']': token.RIGHT_BRACKET,
	',': token.COMMA,
	'.': token.DOT,
	':': token.COLON,
	';': token.SEMICOLON,
}

var escapes = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'"':  '"',
	'\'': '\'',
	'\\': '\\',
}

const hintSyntax = "Check your syntax."

// Lexer performs lexical analysis of Fynk source. A Lexer is used for a
// single run and is not safe for concurrent use.
type Lexer struct {
	cursor *Cursor
	file   string
	sink   diag.Sink
}

// NewLexer creates a lexer for src. file labels diagnostics; a nil sink
// discards them.
func NewLexer(file, src string, sink diag.Sink) *Lexer {
	if sink == nil {
		sink = diag.Discard
	}
	return &Lexer{
		cursor: NewCursor(src),
		file:   file,
		sink:   sink,
	}
}

// Tokenize lexes src completely
func Tokenize(file, src string, sink diag.Sink) (*token.Stream, error) {
	return NewLexer(file, src, sink).Tokenize()
}

// Tokenize returns every token up to and including EOF as a stream
func (l *Lexer) Tokenize() (*token.Stream, error) {
	var tokens []token.Token

	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)

		if tok.Kind == token.EOF {
			break
		}
	}

	return token.NewStream(l.file, tokens), nil
}

// NextToken returns the next token. After EOF it keeps returning EOF.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipIrrelevant()

	c := l.cursor
	ch := c.Current()
	line, column := c.Line(), c.Column()

	switch {
	case ch == NoChar:
		return token.New(token.EOF, "", line, column), nil

	case isDigit(ch) || (ch == '.' && isDigit(c.Peek(1))):
		return l.readNumber()

	case ch == '"' || ch == '\'':
		return l.readString()

	case unicode.IsLetter(ch) || ch == '_':
		return l.readIdentifier(), nil
	}

	if kind, ok := twoCharOperators[[2]rune{ch, c.Peek(1)}]; ok {
		lexeme := string([]rune{ch, c.Peek(1)})
		c.Advance()
		c.Advance()
		return token.New(kind, lexeme, line, column), nil
	}

	if kind, ok := oneCharOperators[ch]; ok {
		c.Advance()
		return token.New(kind, string(ch), line, column), nil
	}

	return token.Token{}, l.fail(line, column,
		fmt.Sprintf("Unexpected character '%c'", ch), hintSyntax)
}

// skipIrrelevant skips whitespace and # line comments
func (l *Lexer) skipIrrelevant() {
	c := l.cursor
	for {
		ch := c.Current()
		switch {
		case ch == '#':
			for c.Current() != NoChar && c.Current() != '\n' {
				c.Advance()
			}
		case ch != NoChar && unicode.IsSpace(ch):
			c.Advance()
		default:
			return
		}
	}
}

// readNumber reads an INT or FLOAT literal
func (l *Lexer) readNumber() (token.Token, error) {
	c := l.cursor
	line, column := c.Line(), c.Column()

	var b strings.Builder
	hasDot := false

	for ch := c.Current(); isDigit(ch) || ch == '.'; ch = c.Current() {
		if ch == '.' {
			if hasDot {
				return token.Token{}, l.fail(c.Line(), c.Column(),
					"Multiple decimal points in number", "A number may contain only one '.'.")
			}
			hasDot = true
		}
		b.WriteRune(ch)
		c.Advance()
	}

	text := b.String()
	if hasDot {
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return token.Token{}, l.fail(line, column,
				fmt.Sprintf("Float literal out of range: %s", text), hintSyntax)
		}
		return token.New(token.FLOAT, value, line, column), nil
	}

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return token.Token{}, l.fail(line, column,
			fmt.Sprintf("Integer literal out of range: %s", text),
			"Integer literals must fit in 64 bits.")
	}
	return token.New(token.INT, value, line, column), nil
}

// readString reads a quoted string literal and decodes its escapes
func (l *Lexer) readString() (token.Token, error) {
	c := l.cursor
	line, column := c.Line(), c.Column()
	quote := c.Current()
	c.Advance()

	var b strings.Builder
	for c.Current() != NoChar && c.Current() != quote {
		ch := c.Current()
		if ch == '\\' {
			c.Advance()
			if c.Current() == NoChar {
				break
			}
			escaped := c.Current()
			if decoded, ok := escapes[escaped]; ok {
				escaped = decoded
			}
			b.WriteRune(escaped)
			c.Advance()
			continue
		}

		if ch < 32 && ch != '\n' {
			return token.Token{}, l.fail(c.Line(), c.Column(),
				"Unprintable character in string", "Control characters must be escaped.")
		}
		b.WriteRune(ch)
		c.Advance()
	}

	if c.Current() != quote {
		opposite := '"'
		if quote == '"' {
			opposite = '\''
		}
		return token.Token{}, l.fail(line, column,
			fmt.Sprintf("Unclosed string literal starting with %c%c%c", opposite, quote, opposite),
			hintSyntax)
	}
	c.Advance()

	return token.New(token.STRING, b.String(), line, column), nil
}

// readIdentifier reads an identifier, keyword or boolean
func (l *Lexer) readIdentifier() token.Token {
	c := l.cursor
	line, column := c.Line(), c.Column()

	var b strings.Builder
	for ch := c.Current(); isIdentPart(ch); ch = c.Current() {
		b.WriteRune(ch)
		c.Advance()
	}

	kind, value := token.Lookup(b.String())
	return token.New(kind, value, line, column)
}

// fail reports a lexical diagnostic and returns it as an error
func (l *Lexer) fail(line, column int, message, hint string) error {
	d := diag.Diagnostic{
		File:    l.file,
		Line:    line,
		Column:  column,
		Message: diag.LexerPrefix + message,
		Hint:    hint,
	}
	l.sink.Report(d)
	return d.Err()
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentPart(ch rune) bool {
	return ch != NoChar && (unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_')
}
