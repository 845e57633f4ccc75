package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wgslkit/internal/config"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFull(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[output]
color = "never"
format = "json"
show_notes = true

[parse]
max_diagnostics = 50
jobs = 4
cache = true

[theme]
keyword = "magenta"
type = "cyan"
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output.Color != "never" || cfg.Output.Format != "json" {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Parse.MaxDiagnostics != 50 || cfg.Parse.Jobs != 4 || !cfg.Parse.Cache {
		t.Errorf("parse = %+v", cfg.Parse)
	}
	if cfg.Theme["keyword"] != "magenta" {
		t.Errorf("theme = %v", cfg.Theme)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[output]\ncolour = \"always\"\n")
	if _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "unknown key") {
		t.Fatalf("err = %v, want unknown key", err)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	for _, content := range []string{
		"[output]\ncolor = \"sometimes\"\n",
		"[output]\nformat = \"xml\"\n",
		"[parse]\njobs = -1\n",
	} {
		path := writeManifest(t, t.TempDir(), content)
		if _, err := config.Load(path); err == nil {
			t.Errorf("%q: want validation error", content)
		}
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[output]\ncolor = \"always\"\n")
	nested := filepath.Join(root, "shaders", "effects")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, path, err := config.Discover(nested)
	if err != nil {
		t.Fatal(err)
	}
	if path == "" || cfg.Output.Color != "always" {
		t.Errorf("discover = %+v at %q", cfg, path)
	}
	// Unlisted sections keep their defaults.
	if cfg.Output.Format != "pretty" {
		t.Errorf("format default lost: %q", cfg.Output.Format)
	}
}

func TestDiscoverDefaultsWhenMissing(t *testing.T) {
	cfg, path, err := config.Discover(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		t.Errorf("path = %q, want empty", path)
	}
	if cfg.Output.Color != "auto" || cfg.Output.Format != "pretty" {
		t.Errorf("defaults = %+v", cfg.Output)
	}
}
