// Package config loads the optional plugin configuration file. Flags
// override file values, file values override built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PluginRootEnv points at the plugin's own resources when the tool runs as
// a Claude Code plugin.
const PluginRootEnv = "CLAUDE_PLUGIN_ROOT"

// File mirrors the yaml configuration. Zero values mean "not set".
type File struct {
	TwitterStyle    string `yaml:"twitter_style"`
	LinkedInStyle   string `yaml:"linkedin_style"`
	IncludeHashtags string `yaml:"include_hashtags"` // auto, on, off
	ShortLimit      int    `yaml:"short_limit"`
	OutputDir       string `yaml:"output_dir"`
}

// DefaultPath returns the first plausible config location: the plugin root
// when set, otherwise the user's config directory.
func DefaultPath() string {
	if root := os.Getenv(PluginRootEnv); root != "" {
		return filepath.Join(root, "config.yaml")
	}
	confDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(confDir, "build-in-public", "config.yaml")
}

// Load reads a config file. A missing file is not an error; a present but
// unreadable or malformed file is.
func Load(path string) (File, error) {
	if path == "" {
		return File{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return File{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return f, nil
}
