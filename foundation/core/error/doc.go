// Package error provides structured error handling for the Fynk toolchain.
//
// Package: error
// Title: Fynk Error Handling Framework
// Description: Structured errors carrying a code, a severity, free-form details
//              and a captured stack trace. Lexical and syntax diagnostics leave
//              the front end as *Error values so callers can branch on the code
//              and read the source position back out of the details.
// Author: fynk authors
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Front-end codes (lexical, syntax, source read)
//
// Usage:
//
//	import mdwerror "github.com/fynk-lang/fynk/foundation/core/error"
//
//	err := mdwerror.New("LexerError: Unexpected character '$'").
//		WithCode(mdwerror.CodeLexical).
//		WithDetail("file", "main.fynk").
//		WithDetail("line", 3)
//
//	if mdwerror.HasCode(err, mdwerror.CodeLexical) {
//		// report and stop
//	}
package error
