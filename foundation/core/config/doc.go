// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads strcore settings from TOML or YAML
//              files, a .env file and STRX_* environment variables.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-03
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-03 v0.1.0: Typed configuration with TOML/YAML support
// - 2026-10-15 v0.2.0: Environment overlay, byte sizes and discovery

/*
Package config loads and validates strcore configuration.

Package: config
Title: Core Configuration Management
Description: A typed Config with log, alloc and input sections. Files are
             decoded by extension, then environment variables override
             individual fields, then defaults fill what is still unset.
Author: msto63
Version: v0.2.0
Created: 2026-10-03
Modified: 2026-10-15

Sources, in increasing precedence:

 1. Defaults (Default, applyDefaults)
 2. The configuration file (.toml, .yaml or .yml)
 3. Variables from a .env file, when LoadOptions.DotEnv names one; these
    never replace variables already present in the process environment
 4. STRX_* environment variables

File example:

	[log]
	level = "debug"
	format = "text"

	[alloc]
	kind = "limited"
	limit = "64 MiB"
	trace = false

	[input]
	max_size = "16 MiB"
	encoding = "auto"

The matching environment variables are STRX_LOG_LEVEL, STRX_LOG_FORMAT,
STRX_LOG_CALLER, STRX_ALLOC_KIND, STRX_ALLOC_LIMIT, STRX_ALLOC_TRACE,
STRX_INPUT_MAX_SIZE and STRX_INPUT_ENCODING. STRX_CONFIG names the file
Discover should load.

Byte sizes accept anything go-humanize parses: "512", "4 KiB", "64MB".

All failures are *error.Error values; invalid settings carry
CodeInvalidConfig, unreadable or malformed files CodeConfigError, and a
missing file CodeNotFound.
*/
package config
