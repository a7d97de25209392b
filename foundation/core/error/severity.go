// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick a log level for an error and to
//              decide how loudly a tool should complain about it.
// Author: fynk authors
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for front-end codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is a problem in user input, such as a malformed source file
	SeverityLow Severity = iota

	// SeverityMedium is an environmental problem the user can fix (missing file, bad config)
	SeverityMedium

	// SeverityHigh is a defect inside the toolchain
	SeverityHigh

	// SeverityCritical makes the process unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level points at a toolchain defect
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeLexical, CodeSyntax, CodeInvalidInput, CodeSourceTooLarge:
		return SeverityLow
	case CodeSourceRead, CodeNotFound, CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityMedium
	case CodeInternal:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
