// File: doc.go
// Title: Fynk Token Package Documentation
// Description: Package token defines the lexical units of Fynk and the
//              materialized stream the parser reads them from.
// Author: fynk authors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial token kinds, keyword set and stream

/*
Package token defines the lexical units of the Fynk language.

A Token has a Kind, a typed Value and the position of its first character.
Lines start at 1 and columns at 0.

	tok := token.New(token.INT, int64(12), 1, 0)
	tok.Int()     // 12
	tok.String()  // INT(12) at 1:0

Stream is the fully materialized output of one lexer run. It never fails on
lookahead: reading past the last token yields a synthetic EOF at (-1, -1).

	stream := token.NewStream("main.fy", toks)
	for stream.Current().Kind != token.EOF {
		stream.Advance()
	}
*/
package token
