// ============================================================================
// fynk - Fynk language front end
// ============================================================================
//
// Package:     version
// Description: Central version management for the fynk tools
// Author:      fynk authors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

// Version constants for the fynk tools
const (
	// Platform version, printed by `fynk version`
	Platform = "0.2.0"

	// Component versions
	Lexer      = "0.2.0"
	Parser     = "0.2.0"
	Playground = "0.2.0"
	Explorer   = "0.2.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "playground":
		return Playground
	case "explorer":
		return Explorer
	default:
		return Platform
	}
}
