// Package config loads the optional cprobe.toml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the project file looked up from the source root upwards.
const FileName = "cprobe.toml"

// ErrUnknownKey is returned for keys the file format does not define.
var ErrUnknownKey = errors.New("unknown configuration key")

// Config holds every setting a project file may carry. Zero values mean
// "not set" and are replaced by Default.
type Config struct {
	Mode     string   `toml:"mode"`
	Feature  string   `toml:"feature"`
	Probe    string   `toml:"probe"`
	Header   string   `toml:"header"`
	Include  string   `toml:"include"`
	Exclude  []string `toml:"exclude"`
	Parallel int      `toml:"parallel"`
	Manifest string   `toml:"manifest"`
	LogLevel string   `toml:"log_level"`
}

// Default returns the built-in settings. They match the kernel test harness
// the probe runtime was written for.
func Default() Config {
	return Config{
		Mode:     "statement",
		Feature:  "ENABLE_COVERAGE",
		Probe:    "COVERAGE_LINE",
		Header:   "simple_coverage.h",
		Include:  `#include "coverage/simple_coverage.h"`,
		Exclude:  []string{"test", "build"},
		Parallel: 1,
		LogLevel: "warn",
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", false, nil
}

// Load reads path over the defaults. Keys absent from the file keep their
// default value.
func Load(path string) (Config, error) {
	var file Config

	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		return Config{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}

	cfg := Default().Merge(file)
	if meta.IsDefined("exclude") {
		// An explicit empty list disables the default exclusions.
		cfg.Exclude = append([]string{}, file.Exclude...)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Resolve loads explicit when it is set, otherwise the first FileName found
// from startDir upwards, otherwise the defaults. It also returns the path of
// the file used, empty when none.
func Resolve(explicit, startDir string) (Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)

		return cfg, explicit, err
	}

	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}

	if !ok {
		return Default(), "", nil
	}

	cfg, err := Load(path)

	return cfg, path, err
}

// Merge returns c with every non-zero field of over applied on top.
func (c Config) Merge(over Config) Config {
	if over.Mode != "" {
		c.Mode = over.Mode
	}

	if over.Feature != "" {
		c.Feature = over.Feature
	}

	if over.Probe != "" {
		c.Probe = over.Probe
	}

	if over.Header != "" {
		c.Header = over.Header
	}

	if over.Include != "" {
		c.Include = over.Include
	}

	if over.Exclude != nil {
		c.Exclude = over.Exclude
	}

	if over.Parallel != 0 {
		c.Parallel = over.Parallel
	}

	if over.Manifest != "" {
		c.Manifest = over.Manifest
	}

	if over.LogLevel != "" {
		c.LogLevel = over.LogLevel
	}

	return c
}

// Validate checks values the rest of the program relies on.
func (c Config) Validate() error {
	if c.Mode != "function" && c.Mode != "statement" {
		return fmt.Errorf("invalid mode %q: want function or statement", c.Mode)
	}

	if c.Parallel < 1 {
		return fmt.Errorf("invalid parallel %d: must be at least 1", c.Parallel)
	}

	if strings.ContainsAny(c.Probe, "(); \t") {
		return fmt.Errorf("invalid probe %q: want a bare macro name", c.Probe)
	}

	for _, p := range c.Exclude {
		if _, err := filepath.Match(p, ""); err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
	}

	return nil
}
