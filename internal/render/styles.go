// ============================================================================
// fynk - Fynk language front end
// ============================================================================
//
// Package:     render
// Description: Terminal styles for diagnostics and token tables
// Author:      fynk authors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette, shared with the explorer
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
)

// Styles groups the styles used to render front end output
type Styles struct {
	Error    lipgloss.Style
	Location lipgloss.Style
	Gutter   lipgloss.Style
	Caret    lipgloss.Style
	Hint     lipgloss.Style
	Header   lipgloss.Style
	Kind     lipgloss.Style
	Value    lipgloss.Style
	Success  lipgloss.Style
	Muted    lipgloss.Style
}

// DefaultStyles returns the colored styles
func DefaultStyles() Styles {
	return Styles{
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Location: lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true),
		Gutter: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Caret: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Hint: lipgloss.NewStyle().
			Foreground(ColorAccent).
			Italic(true),
		Header: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Underline(true),
		Kind: lipgloss.NewStyle().
			Foreground(ColorSecondary),
		Value: lipgloss.NewStyle().
			Foreground(ColorText),
		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// PlainStyles returns styles that render text unchanged
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Error:    plain,
		Location: plain,
		Gutter:   plain,
		Caret:    plain,
		Hint:     plain,
		Header:   plain,
		Kind:     plain,
		Value:    plain,
		Success:  plain,
		Muted:    plain,
	}
}

// StylesFor picks DefaultStyles or PlainStyles
func StylesFor(color bool) Styles {
	if color {
		return DefaultStyles()
	}
	return PlainStyles()
}
