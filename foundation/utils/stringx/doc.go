// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides bounded ASCII string primitives, a
//              non-owning StringView and an allocator-bound owning String.
// Author: msto63
// Version: v0.3.2
// Created: 2026-09-29
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-29 v0.3.0: Bounded scanning, compare and copy primitives
// - 2026-09-30 v0.3.0: StringView and String
// - 2026-10-09 v0.3.1: Formatting, prettify and identifier matching
// - 2026-10-14 v0.3.2: Out-of-memory errors from String mutation

// Package stringx provides bounded ASCII string handling for the strcore
// foundation.
//
// Package: stringx
// Title: Bounded ASCII String Core
// Description: Low-level string algorithms that never read or write past an
//              explicit bound, a borrowed StringView and an owning String
//              whose buffer always comes from, and goes back to, one
//              allocx.Allocator.
// Author: msto63
// Version: v0.3.2
// Created: 2026-09-29
// Modified: 2026-10-14
//
// Buffers and Terminators
//
// Every read-only primitive accepts a string or a []byte (the Bytes
// constraint). Content ends at the first 0x00 byte or at the end of the
// buffer, whichever comes first. Destinations are []byte whose len is the
// capacity; bound a destination by re-slicing it:
//
//	dst := make([]byte, 64)
//	stringx.Strlncpy(dst[:5], "copy", stringx.Unbounded) // 4, dst = "copy\x00"
//	stringx.Strlncat(dst[:8], "cat", stringx.Unbounded)  // 3, dst = "copycat\x00"
//
// Positions are returned as indexes into the input and -1 means not found.
// Scanning helpers such as Strws, Streol or Strnl return the index at which
// they stopped.
//
// Return Values Instead of Errors
//
// Truncation and not-found are ordinary results. Copy and format functions
// report the length they wanted to produce so callers compare it with the
// capacity:
//
//	if stringx.Strlcpy(dst, src) >= len(dst) {
//	    // truncated, dst is still terminated
//	}
//
// Only String mutation can fail, when its allocator refuses a request. The
// error is a *error.Error with code OUT_OF_MEMORY and the String keeps its
// previous content.
//
// Views and Owning Strings
//
// StringView is a borrowed (bytes, length) pair; it never copies and does
// not promise a terminator after its content. String owns its buffer:
//
//	s := stringx.NewString(allocx.NewPool())
//	defer s.Release()
//
//	_ = s.SetView(stringx.ViewString("test"))
//	_ = s.AppendString("test")
//	_ = stringx.StringPrintf(s, "-%d", 42) // "testtest-42"
//
// The zero String binds allocx.Default() on first use. Release hands the
// buffer back; Go has no destructors, so owners call it explicitly.
//
// Policies
//
//   - ToBool accepts "true", "yes", "on" and "1" in any letter case.
//   - Prettify uses binary scaling with IEC suffixes: "5 B", "1.0 KiB".
//   - EolLF turns "\r\n" and a lone "\r" into "\n".
//   - Identifiers are runs of letters, digits and '_'.
//
// Concurrency
//
// All functions are synchronous. A StringView or String must not be
// mutated while another goroutine uses it.
package stringx
