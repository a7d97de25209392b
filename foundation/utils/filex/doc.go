// Package filex provides the file system helpers used to locate and size
// source files.
//
// Package: filex
// Title: File Helpers
// Description: Path classification, human readable sizes, and recursive
//              search for files matching one or more glob patterns.
// Author: fynk authors
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-19 v0.2.0: Reduced to source discovery helpers
//
// Usage:
//
//	if filex.IsDir(arg) {
//		files, err := filex.FindFiles(arg, "*.fy", "*.fynk")
//		...
//	}
package filex
