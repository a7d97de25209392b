// ============================================================================
// fynk - Fynk language front end
// ============================================================================
//
// Package:     explore
// Description: Styles for the explorer TUI
// Author:      fynk authors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package explore

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/fynk-lang/fynk/internal/render"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(render.ColorPrimary).
			Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(render.ColorMuted)

	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(render.ColorPrimary)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(render.ColorText).
			Padding(0, 1)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(render.ColorSuccess)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(render.ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(render.ColorMuted)
)
