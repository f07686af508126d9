// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the typed Config, loading it from TOML or YAML
//              files with .env and environment variable overrides, and
//              validating the result.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-03
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-03 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: caarlos0/env overlay, godotenv, byte sizes

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	scerror "github.com/msto63/strcore/foundation/core/error"
	"github.com/msto63/strcore/foundation/core/log"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "STRX_"

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Allocator kinds accepted in alloc.kind.
const (
	AllocHeap    = "heap"
	AllocPool    = "pool"
	AllocLimited = "limited"
)

// Input encodings accepted in input.encoding.
const (
	EncodingAuto  = "auto"
	EncodingUTF8  = "utf-8"
	EncodingUTF16 = "utf-16"
)

// Config is the complete strcore configuration.
type Config struct {
	Log   LogConfig   `toml:"log" yaml:"log" envPrefix:"LOG_"`
	Alloc AllocConfig `toml:"alloc" yaml:"alloc" envPrefix:"ALLOC_"`
	Input InputConfig `toml:"input" yaml:"input" envPrefix:"INPUT_"`

	source string
	format Format
}

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level" env:"LEVEL"`
	Format string `toml:"format" yaml:"format" env:"FORMAT"`
	Caller bool   `toml:"caller" yaml:"caller" env:"CALLER"`
}

// AllocConfig selects the process default allocator.
type AllocConfig struct {
	Kind  string   `toml:"kind" yaml:"kind" env:"KIND"`
	Limit ByteSize `toml:"limit" yaml:"limit" env:"LIMIT"`
	Trace bool     `toml:"trace" yaml:"trace" env:"TRACE"`
}

// InputConfig bounds and decodes command input.
type InputConfig struct {
	MaxSize  ByteSize `toml:"max_size" yaml:"max_size" env:"MAX_SIZE"`
	Encoding string   `toml:"encoding" yaml:"encoding" env:"ENCODING"`
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format Format // File format (default: auto-detect)

	// DotEnv names a .env file loaded before the environment overlay.
	// A missing file is ignored.
	DotEnv string

	// Environment replaces the process environment when non-nil.
	Environment map[string]string
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	cfg := &Config{format: FormatAuto}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions decodes filePath, applies the environment overlay and
// defaults, and validates the result. An empty filePath skips the file.
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	const op = "config.LoadWithOptions"

	cfg := &Config{format: options.Format}

	if strings.TrimSpace(filePath) != "" {
		filePath = os.ExpandEnv(filePath)
		content, err := os.ReadFile(filePath)
		if os.IsNotExist(err) {
			return nil, scerror.New(fmt.Sprintf("config file not found: %s", filePath)).
				WithCode(scerror.CodeNotFound).
				WithOperation(op).
				WithDetail("filePath", filePath)
		}
		if err != nil {
			return nil, scerror.Wrap(err, "failed to read config file").
				WithCode(scerror.CodeConfigError).
				WithOperation(op).
				WithDetail("filePath", filePath)
		}

		if cfg.format == FormatAuto {
			cfg.format = detectFormat(filePath)
		}
		if err := parseContent(content, cfg.format, cfg); err != nil {
			return nil, err.WithDetail("filePath", filePath)
		}
		cfg.source = filePath
	}

	if options.DotEnv != "" {
		if err := godotenv.Load(options.DotEnv); err != nil && !os.IsNotExist(err) {
			return nil, scerror.Wrap(err, "failed to load .env file").
				WithCode(scerror.CodeEnvironmentError).
				WithOperation(op).
				WithDetail("dotenv", options.DotEnv)
		}
	}

	envOpts := env.Options{Prefix: EnvPrefix}
	if options.Environment != nil {
		envOpts.Environment = options.Environment
	}
	if err := env.ParseWithOptions(cfg, envOpts); err != nil {
		return nil, scerror.Wrap(err, "invalid environment override").
			WithCode(scerror.CodeInvalidConfig).
			WithOperation(op)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// detectFormat detects the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format, cfg *Config) *scerror.Error {
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(content)).Decode(cfg)
		if err != nil {
			return scerror.Wrap(err, "TOML parse error").
				WithCode(scerror.CodeConfigError).
				WithOperation("config.parseContent")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return scerror.New("unknown configuration keys: " + strings.Join(keys, ", ")).
				WithCode(scerror.CodeInvalidConfig).
				WithOperation("config.parseContent").
				WithDetail("keys", keys)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return scerror.Wrap(err, "YAML parse error").
				WithCode(scerror.CodeConfigError).
				WithOperation("config.parseContent")
		}
	default:
		return scerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(scerror.CodeInvalidInput).
			WithOperation("config.parseContent").
			WithDetail("format", format.String())
	}
	return nil
}

// applyDefaults fills every field still at its zero value.
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Alloc.Kind == "" {
		c.Alloc.Kind = AllocHeap
	}
	c.Alloc.Kind = strings.ToLower(c.Alloc.Kind)

	if c.Input.MaxSize == 0 {
		c.Input.MaxSize = 16 << 20
	}
	if c.Input.Encoding == "" {
		c.Input.Encoding = EncodingAuto
	}
	c.Input.Encoding = strings.ToLower(c.Input.Encoding)
}

// Validate reports the first invalid setting as CodeInvalidConfig.
func (c *Config) Validate() error {
	invalid := func(key string, value interface{}, reason string) error {
		return scerror.New(fmt.Sprintf("invalid %s: %s", key, reason)).
			WithCode(scerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("key", key).
			WithDetail("value", value)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", c.Log.Level, "expected trace, debug, info, warn, error or fatal")
	}
	if _, err := log.ParseFormat(c.Log.Format); err != nil {
		return invalid("log.format", c.Log.Format, "expected json or text")
	}

	switch c.Alloc.Kind {
	case AllocHeap, AllocPool:
	case AllocLimited:
		if c.Alloc.Limit == 0 {
			return invalid("alloc.limit", c.Alloc.Limit.String(), "a limited allocator needs a non-zero limit")
		}
	default:
		return invalid("alloc.kind", c.Alloc.Kind, "expected heap, pool or limited")
	}

	switch c.Input.Encoding {
	case EncodingAuto, EncodingUTF8, EncodingUTF16:
	default:
		return invalid("input.encoding", c.Input.Encoding, "expected auto, utf-8 or utf-16")
	}

	return nil
}

// Source returns the file the configuration was loaded from, or "".
func (c *Config) Source() string { return c.source }

// FileFormat returns the format the file was decoded as.
func (c *Config) FileFormat() Format { return c.format }
