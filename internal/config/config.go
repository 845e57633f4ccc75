// Package config loads wgslkit.toml, the optional per-project knobs for
// output formatting, parsing limits, and highlight theming.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file looked up from the working directory upward.
const ManifestName = "wgslkit.toml"

// Config is the full wgslkit.toml document.
type Config struct {
	Output Output            `toml:"output"`
	Parse  Parse             `toml:"parse"`
	Theme  map[string]string `toml:"theme"`
}

// Output controls how diagnostics and dumps are printed.
type Output struct {
	// Color is "auto", "always", or "never".
	Color     string `toml:"color"`
	Format    string `toml:"format"` // "pretty" or "json"
	ShowNotes bool   `toml:"show_notes"`
}

// Parse bounds the parsing pipeline.
type Parse struct {
	MaxDiagnostics int  `toml:"max_diagnostics"`
	Jobs           int  `toml:"jobs"`
	Cache          bool `toml:"cache"`
}

// Default returns the configuration used when no manifest exists.
func Default() *Config {
	return &Config{
		Output: Output{Color: "auto", Format: "pretty", ShowNotes: true},
		Parse:  Parse{MaxDiagnostics: 0, Jobs: 0, Cache: false},
		Theme:  map[string]string{},
	}
}

// Load reads and validates one manifest file.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in %q", undecoded[0].String(), path)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %q: %w", path, err)
	}
	return cfg, nil
}

// Discover walks up from startDir looking for the manifest; the default
// configuration is returned when none exists.
func Discover(startDir string) (*Config, string, error) {
	path, ok, err := findManifest(startDir)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func findManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
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

func (c *Config) validate() error {
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color must be auto, always, or never, got %q", c.Output.Color)
	}
	switch c.Output.Format {
	case "pretty", "json":
	default:
		return fmt.Errorf("output.format must be pretty or json, got %q", c.Output.Format)
	}
	if c.Parse.MaxDiagnostics < 0 {
		return fmt.Errorf("parse.max_diagnostics must not be negative")
	}
	if c.Parse.Jobs < 0 {
		return fmt.Errorf("parse.jobs must not be negative")
	}
	return nil
}
