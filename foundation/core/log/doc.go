// Package log provides leveled, structured logging for strcore.
//
// Package: log
// Title: strcore Structured Logging
// Description: A small structured logger with JSON and text output,
//              immutable With* derivation and error-severity aware
//              reporting. Used by the allocators for tracing and by the
//              strx command for diagnostics.
// Author: msto63
// Version: v0.2.0
// Created: 2026-09-28
// Modified: 2026-10-12
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation
// - 2026-10-12 v0.2.0: Removed async mode and timers, added Discard
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Output: os.Stderr,
//		Name:   "strx",
//	})
//	logger.Debug("allocated", log.Fields{"size": 32})
package log
