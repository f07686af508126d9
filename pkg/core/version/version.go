// ============================================================================
// strcore - bounded ASCII string core
// ============================================================================
//
// Package:     version
// Description: Central version management for libraries and the CLI
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package version

// Version constants for strcore components
const (
	// Module version
	Module = "0.3.2"

	// Component versions
	Stringx = "0.3.2"
	Allocx  = "0.2.0"
	Hashx   = "0.1.0"
	CLI     = "0.2.0"
)

// Commit is set at build time with -ldflags "-X ...version.Commit=<sha>".
var Commit = "dev"

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "stringx":
		return Stringx
	case "allocx":
		return Allocx
	case "hashx":
		return Hashx
	case "strx", "cli":
		return CLI
	default:
		return Module
	}
}

// Components lists the names ComponentVersion knows, in display order.
func Components() []string {
	return []string{"stringx", "allocx", "hashx", "strx"}
}
