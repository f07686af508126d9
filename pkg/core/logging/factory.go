// ============================================================================
// strcore - bounded ASCII string core
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      msto63
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/msto63/strcore/foundation/core/config"
	sclog "github.com/msto63/strcore/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name shown in every entry
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: "json" or "text" (default: text)
	Format string

	// Include file:line of the caller
	Caller bool

	// Primary output (default: stderr)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "text",
	}
}

// FromConfig maps the [log] section onto a LoggerConfig
func FromConfig(name string, cfg config.LogConfig) LoggerConfig {
	lc := DefaultLoggerConfig(name)
	if cfg.Level != "" {
		lc.Level = cfg.Level
	}
	if cfg.Format != "" {
		lc.Format = cfg.Format
	}
	lc.Caller = cfg.Caller
	return lc
}

// NewLogger creates a foundation logger. Unknown levels fall back to info
// and unknown formats to text.
func NewLogger(cfg LoggerConfig) *sclog.Logger {
	level, err := sclog.ParseLevel(cfg.Level)
	if err != nil {
		level = sclog.LevelInfo
	}

	format, err := sclog.ParseFormat(cfg.Format)
	if err != nil {
		format = sclog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return sclog.NewWithConfig(sclog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.Caller,
	})
}

// KV converts alternating key/value arguments to Fields. Non-string keys
// and a trailing key without value are dropped.
func KV(keysAndValues ...interface{}) sclog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(sclog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
