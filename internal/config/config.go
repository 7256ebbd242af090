// Package config loads docketfold settings from an optional .docketfold.json
// discovered by walking upward from the working directory.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// ConfigFileName is the repo-local configuration file.
const ConfigFileName = ".docketfold.json"

// Config holds application configuration.
type Config struct {
	// CasesRoot is the directory holding one subdirectory per case slug.
	CasesRoot string `json:"cases_root"`

	// ContentRoot is the directory holding per-case content pages
	// (<ContentRoot>/<slug>/index.md) whose front matter seeds the docket record.
	ContentRoot string `json:"content_root"`

	// CountyHints overlays the builtin venue-token table, e.g. {"bkr": "Bankruptcy Court"}.
	CountyHints map[string]string `json:"county_hints,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		CasesRoot:   "cases",
		ContentRoot: filepath.Join("content", "cases"),
	}
}

// Load discovers and loads the nearest .docketfold.json at or above
// startDir. Defaults are returned when no file is found.
func Load(startDir string) (*Config, error) {
	path := findRepoConfig(startDir)
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from an explicit path, filling unset fields
// from defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// findRepoConfig walks upward from startDir to find the nearest
// .docketfold.json. Returns empty string when none exists.
func findRepoConfig(startDir string) string {
	dir := startDir
	for {
		path := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Merge combines base and overlay configs. Overlay values win for scalars;
// county hints are merged with overlay entries taking precedence.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.CasesRoot = overlay.CasesRoot
	if result.CasesRoot == "" {
		result.CasesRoot = base.CasesRoot
	}

	result.ContentRoot = overlay.ContentRoot
	if result.ContentRoot == "" {
		result.ContentRoot = base.ContentRoot
	}

	if len(base.CountyHints) > 0 || len(overlay.CountyHints) > 0 {
		result.CountyHints = make(map[string]string, len(base.CountyHints)+len(overlay.CountyHints))
		for k, v := range base.CountyHints {
			result.CountyHints[k] = v
		}
		for k, v := range overlay.CountyHints {
			result.CountyHints[k] = v
		}
	}

	return result
}
