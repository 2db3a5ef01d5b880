// Package logoconfig loads `.logorc.yaml`, the optional per-project
// configuration file supplying LOAD's default script search folders
// and which turtle back end `cmd/logo run` should install. The
// teacher carries `goccy/go-yaml` only as an indirect dependency of
// its own tooling; this package promotes it to direct use, the way
// SPEC_FULL.md's domain stack calls for.
package logoconfig

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the parsed shape of `.logorc.yaml`.
type Config struct {
	// ScriptFolders are searched, in order, by LOAD.
	ScriptFolders []string `yaml:"script_folders"`
	// Backend selects the turtle back end `cmd/logo run` installs:
	// "nop" (default, headless) or "turtle" (pkg/turtle's pure-math
	// recorder).
	Backend string `yaml:"backend"`
	// UndoBufferSize seeds the installed backend's undo buffer depth.
	UndoBufferSize int `yaml:"undo_buffer_size"`
}

// Default returns the configuration used when no `.logorc.yaml` is
// found: no extra script folders, the headless "nop" backend.
func Default() *Config {
	return &Config{Backend: "nop", UndoBufferSize: 100}
}

// Load reads and parses the YAML file at path. A missing file is not
// an error: it returns Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("logoconfig: reading %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("logoconfig: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFirst tries each candidate path in order and returns the first
// one that exists, or Default() if none do. `cmd/logo` passes a single
// candidate, `.logorc.yaml` in the working directory.
func LoadFirst(candidates ...string) (*Config, error) {
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return Load(c)
		}
	}
	return Default(), nil
}
