// File: stringx.go
// Title: Core String Utility Functions
// Description: Blank checks, truncation, padding, escaping and source line
//              lookup for rendering tokens and diagnostics.
// Author: fynk authors
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-19 v0.2.0: Added Escape and SourceLine

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Truncate truncates a string to maxLen runes, adding an ellipsis if truncated.
// If the string is shorter than maxLen, it returns the original string.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}

	contentLen := maxLen - ellipsisLen
	return string([]rune(s)[:contentLen]) + ellipsis
}

// PadRight pads s to width runes with pad.
// If the string is already longer than width, it returns the original string.
func PadRight(s string, width int, pad rune) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s) + (width-runeCount)*utf8.RuneLen(pad))
	builder.WriteString(s)
	for i := runeCount; i < width; i++ {
		builder.WriteRune(pad)
	}
	return builder.String()
}

// Escape makes control characters, quotes and backslashes visible using the
// escape sequences Fynk string literals accept. Other control characters are
// written as \xNN.
func Escape(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))

	for _, r := range s {
		switch r {
		case '\n':
			builder.WriteString(`\n`)
		case '\t':
			builder.WriteString(`\t`)
		case '"':
			builder.WriteString(`\"`)
		case '\\':
			builder.WriteString(`\\`)
		default:
			if r < 0x20 || r == 0x7f {
				const hex = "0123456789abcdef"
				builder.WriteString(`\x`)
				builder.WriteByte(hex[r>>4])
				builder.WriteByte(hex[r&0xf])
				continue
			}
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// SourceLine returns line n (1-based) of s, split on '\n' only.
// It returns "" when n is out of range.
func SourceLine(s string, n int) string {
	if n < 1 {
		return ""
	}
	for i := 1; i < n; i++ {
		idx := strings.IndexByte(s, '\n')
		if idx < 0 {
			return ""
		}
		s = s[idx+1:]
	}
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
