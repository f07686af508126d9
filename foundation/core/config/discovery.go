// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Finds the configuration file through STRX_CONFIG and a list
//              of well-known locations.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-03
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-03 v0.1.0: Initial implementation of file discovery
// - 2026-10-15 v0.2.0: STRX_CONFIG and user config directory

package config

import (
	"os"
	"path/filepath"
	"strings"

	scerror "github.com/msto63/strcore/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	Required   bool     // Whether finding a config file is required
	DotEnv     string   // Passed through to LoadOptions
}

// DefaultDiscoveryOptions searches the working directory, then the user
// configuration directory.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "strx"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"strx"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		DotEnv:     ".env",
	}
}

// Discover loads the file named by STRX_CONFIG, or else the first existing
// candidate from options. Without a file the result holds defaults plus
// environment overrides, unless options.Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	loadOptions := LoadOptions{Format: FormatAuto, DotEnv: options.DotEnv}

	if explicit := os.Getenv(EnvPrefix + "CONFIG"); explicit != "" {
		return LoadWithOptions(explicit, loadOptions)
	}

	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return LoadWithOptions("", loadOptions)
	}

	cfg, err := LoadWithOptions(path, loadOptions)
	if err != nil {
		return nil, scerror.Wrap(err, "found config file "+path+" but failed to load").
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", scerror.New("no configuration file found in: "+strings.Join(candidates, ", ")).
		WithCode(scerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// ListPossibleConfigFiles returns a list of all possible configuration file paths
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}
