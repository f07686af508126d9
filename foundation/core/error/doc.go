// Package error provides the structured error type used across strcore.
//
// Package: error
// Title: strcore Error Handling
// Description: Coded, severity-tagged errors with details and a captured
//              stack trace. The string core itself reports truncation and
//              not-found through return values; this package is reserved for
//              the conditions that must be elevated: allocation failure in
//              owning strings, configuration problems and I/O in the CLI.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation with codes and severities
// - 2026-10-12 v0.2.0: Added CodeOutOfMemory and allocator detail helpers
//
// Usage:
//
//	import scerror "github.com/msto63/strcore/foundation/core/error"
//
//	err := scerror.New("allocation failed").
//		WithCode(scerror.CodeOutOfMemory).
//		WithOperation("stringx.String.Append").
//		WithDetail("requested", 4096)
//
//	if scerror.HasCode(err, scerror.CodeOutOfMemory) {
//		// release caches and retry
//	}
package error
