// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the Fynk toolchain so that
//              diagnostics, configuration failures and I/O problems can be told
//              apart without string matching.
// Author: fynk authors
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Replaced platform codes with front-end codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Front end
	CodeLexical        Code = "FYNK_LEXICAL"
	CodeSyntax         Code = "FYNK_SYNTAX"
	CodeSourceRead     Code = "FYNK_SOURCE_READ"
	CodeSourceTooLarge Code = "FYNK_SOURCE_TOO_LARGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeLexical, CodeSyntax, CodeSourceRead, CodeSourceTooLarge,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeSyntax, CodeSourceRead, CodeSourceTooLarge:
		return "fynk"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsDiagnostic reports whether the code belongs to a fatal front-end diagnostic
func (c Code) IsDiagnostic() bool {
	return c == CodeLexical || c == CodeSyntax
}
