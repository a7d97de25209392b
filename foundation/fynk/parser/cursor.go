// File: cursor.go
// Title: Source Cursor
// Description: Rune cursor over source text with line and column tracking.
// Author: fynk authors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial cursor implementation

package parser

import "unicode/utf8"

// NoChar is returned by Current and Peek past the end of input
const NoChar rune = -1

// Cursor walks the runes of a source text. Lines start at 1 and columns at 0;
// consuming a newline moves to the next line and resets the column.
type Cursor struct {
	src    []rune
	pos    int
	line   int
	column int
}

// NewCursor creates a cursor at the first character of src.
// Invalid UTF-8 bytes decode to utf8.RuneError.
func NewCursor(src string) *Cursor {
	runes := make([]rune, 0, utf8.RuneCountInString(src))
	for _, r := range src {
		runes = append(runes, r)
	}
	return &Cursor{src: runes, line: 1}
}

// Current returns the character at the cursor, or NoChar at the end
func (c *Cursor) Current() rune {
	return c.Peek(0)
}

// Peek returns the character distance positions ahead, or NoChar past the end
func (c *Cursor) Peek(distance int) rune {
	i := c.pos + distance
	if i < 0 || i >= len(c.src) {
		return NoChar
	}
	return c.src[i]
}

// Advance consumes the current character. It is a no-op at the end.
func (c *Cursor) Advance() {
	if c.pos >= len(c.src) {
		return
	}
	if c.src[c.pos] == '\n' {
		c.line++
		c.column = 0
	} else {
		c.column++
	}
	c.pos++
}

// Line returns the line of the current character
func (c *Cursor) Line() int {
	return c.line
}

// Column returns the column of the current character
func (c *Cursor) Column() int {
	return c.column
}

// AtEnd reports whether every character has been consumed
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.src)
}
