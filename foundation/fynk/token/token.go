// File: token.go
// Title: Fynk Token Kinds and Tokens
// Description: The closed TokenKind enumeration, the Token record with typed
//              value accessors, and the fixed keyword set.
// Author: fynk authors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial token definitions

package token

import (
	"fmt"
	"strconv"

	mdwstringx "github.com/fynk-lang/fynk/foundation/utils/stringx"
)

// Kind represents the type of a lexical token
type Kind int

const (
	// Special tokens
	EOF Kind = iota

	// Literals and names
	INT        // 123
	FLOAT      // 1.5, .5, 1.
	STRING     // "text", 'text'
	IDENTIFIER // x, _tmp
	KEYWORD    // if, while, ...
	BOOL       // True, False

	// Arithmetic
	PLUS     // +
	MINUS    // -
	MULTIPLY // *
	DIVIDE   // /

	// Assignment and comparison
	ASSIGN                // =
	EQUAL                 // ==
	NOT_EQUAL             // !=
	LESS_THAN             // <
	LESS_THAN_OR_EQUAL    // <=
	GREATER_THAN          // >
	GREATER_THAN_OR_EQUAL // >=

	// Logical
	AND // &
	OR  // |
	NOT // !

	INCREMENT // ++
	DECREMENT // --

	// Delimiters
	LEFT_PAREN    // (
	RIGHT_PAREN   // )
	LEFT_BRACE    // {
	RIGHT_BRACE   // }
	LEFT_BRACKET  // [
	RIGHT_BRACKET // ]
	COMMA         // ,
	DOT           // .
	COLON         // :
	SEMICOLON     // ;

	kindCount
)

var kindNames = [...]string{
	EOF:                   "EOF",
	INT:                   "INT",
	FLOAT:                 "FLOAT",
	STRING:                "STRING",
	IDENTIFIER:            "IDENTIFIER",
	KEYWORD:               "KEYWORD",
	BOOL:                  "BOOL",
	PLUS:                  "PLUS",
	MINUS:                 "MINUS",
	MULTIPLY:              "MULTIPLY",
	DIVIDE:                "DIVIDE",
	ASSIGN:                "ASSIGN",
	EQUAL:                 "EQUAL",
	NOT_EQUAL:             "NOT_EQUAL",
	LESS_THAN:             "LESS_THAN",
	LESS_THAN_OR_EQUAL:    "LESS_THAN_OR_EQUAL",
	GREATER_THAN:          "GREATER_THAN",
	GREATER_THAN_OR_EQUAL: "GREATER_THAN_OR_EQUAL",
	AND:                   "AND",
	OR:                    "OR",
	NOT:                   "NOT",
	INCREMENT:             "INCREMENT",
	DECREMENT:             "DECREMENT",
	LEFT_PAREN:            "LEFT_PAREN",
	RIGHT_PAREN:           "RIGHT_PAREN",
	LEFT_BRACE:            "LEFT_BRACE",
	RIGHT_BRACE:           "RIGHT_BRACE",
	LEFT_BRACKET:          "LEFT_BRACKET",
	RIGHT_BRACKET:         "RIGHT_BRACKET",
	COMMA:                 "COMMA",
	DOT:                   "DOT",
	COLON:                 "COLON",
	SEMICOLON:             "SEMICOLON",
}

// String returns the enumeration name of the kind
func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// IsValid reports whether k is one of the declared kinds
func (k Kind) IsValid() bool {
	return k >= 0 && k < kindCount
}

// Kinds returns every declared kind in enumeration order
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := EOF; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Token represents a lexical token with position information.
//
// Value holds an int64 for INT, a float64 for FLOAT, a bool for BOOL, the
// decoded text for STRING, IDENTIFIER and KEYWORD, and the raw lexeme for
// operators and punctuation. EOF carries "".
type Token struct {
	Kind   Kind
	Value  interface{}
	Line   int // 1-based, -1 for the synthetic end-of-stream token
	Column int // 0-based, -1 for the synthetic end-of-stream token
}

// New creates a token
func New(kind Kind, value interface{}, line, column int) Token {
	return Token{Kind: kind, Value: value, Line: line, Column: column}
}

// Int returns the value of an INT token
func (t Token) Int() int64 {
	v, _ := t.Value.(int64)
	return v
}

// Float returns the value of a FLOAT token
func (t Token) Float() float64 {
	v, _ := t.Value.(float64)
	return v
}

// Bool returns the value of a BOOL token
func (t Token) Bool() bool {
	v, _ := t.Value.(bool)
	return v
}

// Text returns the string value of a STRING, IDENTIFIER, KEYWORD or
// punctuation token
func (t Token) Text() string {
	v, _ := t.Value.(string)
	return v
}

// Lexeme renders the value the way it would appear in source
func (t Token) Lexeme() string {
	switch v := t.Value.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		if v {
			return "True"
		}
		return "False"
	case string:
		if t.Kind == STRING {
			return `"` + mdwstringx.Escape(v) + `"`
		}
		return v
	default:
		return ""
	}
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Kind == EOF {
		return fmt.Sprintf("EOF at %d:%d", t.Line, t.Column)
	}
	return fmt.Sprintf("%s(%s) at %d:%d", t.Kind, t.Lexeme(), t.Line, t.Column)
}

// keywords is the fixed set of reserved words
var keywords = map[string]struct{}{
	"if":       {},
	"elif":     {},
	"else":     {},
	"while":    {},
	"for":      {},
	"in":       {},
	"func":     {},
	"return":   {},
	"break":    {},
	"continue": {},
	"var":      {},
	"const":    {},
	"import":   {},
	"null":     {},
}

// IsKeyword reports whether ident is a reserved word
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}

// Lookup classifies an identifier-shaped lexeme
func Lookup(ident string) (Kind, interface{}) {
	switch ident {
	case "True":
		return BOOL, true
	case "False":
		return BOOL, false
	}
	if IsKeyword(ident) {
		return KEYWORD, ident
	}
	return IDENTIFIER, ident
}
