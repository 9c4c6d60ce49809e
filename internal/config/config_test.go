package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Theme != "default" {
		t.Errorf("expected default theme, got %q", cfg.Theme)
	}
	if cfg.ColorScheme != DefaultColorScheme() {
		t.Error("default config should carry the default color scheme")
	}
}

func TestConfigPath(t *testing.T) {
	path := ConfigPath()

	if !filepath.IsAbs(path) {
		t.Error("ConfigPath should return an absolute path")
	}
	if filepath.Base(path) != "config.json" {
		t.Errorf("expected config file name 'config.json', got %s", filepath.Base(path))
	}
}

func TestLoadCreatesFileOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	cfg := loadFrom(path)
	if cfg.Theme != "default" {
		t.Errorf("first run should return defaults, got theme %q", cfg.Theme)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("first run should create the config file: %v", err)
	}
}

func TestLoadMalformedFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := loadFrom(path)
	if *cfg != *Default() {
		t.Error("malformed config should fall back to defaults")
	}
}

func TestLoadPartialKeysFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"color_scheme": {"primary": "#112233", "error": "nothex"}, "theme": "custom"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := loadFrom(path)
	if cfg.ColorScheme.Primary != "#112233" {
		t.Errorf("valid key should survive, got %q", cfg.ColorScheme.Primary)
	}
	if cfg.ColorScheme.Error != DefaultColorScheme().Error {
		t.Errorf("invalid key should fall back, got %q", cfg.ColorScheme.Error)
	}
	if cfg.ColorScheme.Text != DefaultColorScheme().Text {
		t.Errorf("missing key should fall back, got %q", cfg.ColorScheme.Text)
	}
	if cfg.Theme != "custom" {
		t.Errorf("theme should survive, got %q", cfg.Theme)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Default()
	cfg.Theme = "night"
	cfg.ColorScheme.Primary = "#abcdef"
	if err := cfg.saveTo(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded := loadFrom(path)
	if loaded.Theme != "night" || loaded.ColorScheme.Primary != "#abcdef" {
		t.Errorf("round trip lost data: %+v", loaded)
	}
}

func TestColorResolution(t *testing.T) {
	s := DefaultColorScheme()

	if s.Color("primary") != "#fe640b" {
		t.Errorf("primary should resolve, got %q", s.Color("primary"))
	}
	if s.Color("text_dim") != "#808080" {
		t.Errorf("text_dim should resolve, got %q", s.Color("text_dim"))
	}
	if s.Color("bogus") != s.Color("primary") {
		t.Error("unknown key should resolve to primary")
	}
}

func TestValidHex(t *testing.T) {
	valid := []string{"#000000", "#ffffff", "#fe640b", "#ABCDEF"}
	invalid := []string{"", "#fff", "fe640b", "#ggg000", "#fe640b0"}

	for _, v := range valid {
		if !validHex(v) {
			t.Errorf("%q should be valid", v)
		}
	}
	for _, v := range invalid {
		if validHex(v) {
			t.Errorf("%q should be invalid", v)
		}
	}
}
