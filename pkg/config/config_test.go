package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.UI.SplitRatio != 0.35 {
		t.Errorf("SplitRatio = %v, want 0.35", cfg.UI.SplitRatio)
	}
	if cfg.UI.ShowBreadcrumb == nil || !*cfg.UI.ShowBreadcrumb {
		t.Error("ShowBreadcrumb default should be true")
	}
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom missing file: %v", err)
	}
	if cfg.UI.SplitRatio != DefaultConfig().UI.SplitRatio {
		t.Error("missing file should yield defaults")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := DefaultConfig()
	cfg.Locale = "de"
	cfg.UI.InitialCategory = "General"
	cfg.UI.SplitRatio = 0.5

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Locale != "de" {
		t.Errorf("Locale = %q, want de", loaded.Locale)
	}
	if loaded.UI.InitialCategory != "General" {
		t.Errorf("InitialCategory = %q, want General", loaded.UI.InitialCategory)
	}
	if loaded.UI.SplitRatio != 0.5 {
		t.Errorf("SplitRatio = %v, want 0.5", loaded.UI.SplitRatio)
	}
}

func TestLoadFromClampsSplitRatio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("ui:\n  split_ratio: 3.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UI.SplitRatio != DefaultConfig().UI.SplitRatio {
		t.Errorf("SplitRatio = %v, want clamped default", cfg.UI.SplitRatio)
	}
}

func TestLoadFromBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":::"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom bad yaml: err = nil, want error")
	}
}
