// File: doc.go
// Title: String Utilities Package Documentation
// Description: Package stringx provides the small set of Unicode aware string
//              helpers used by the fynk command line and renderers.
// Author: fynk authors
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Reduced to the helpers used by the fynk tools

/*
Package stringx provides Unicode aware string helpers.

All functions count runes, not bytes, so multi-byte characters in Fynk source
text are never split:

	mdwstringx.Truncate("héllo wörld", 8, "...")  // "héllo..."
	mdwstringx.PadRight("INT", 6, ' ')            // "INT   "
	mdwstringx.Escape("a\tb")                     // `a\tb`
	mdwstringx.SourceLine("x\ny", 2)              // "y"
*/
package stringx
