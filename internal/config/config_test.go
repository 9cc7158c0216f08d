package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultBubblePopConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) error: %v", err)
	}
	if cfg != DefaultBubblePopConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultBubblePopConfig())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*BubblePopConfig)
		expected error
	}{
		{"defaults", func(*BubblePopConfig) {}, nil},
		{"min equals max", func(c *BubblePopConfig) { c.Bubbles.MinSize, c.Bubbles.MaxSize = 50, 50 }, ErrInvalidSizeRange},
		{"min above max", func(c *BubblePopConfig) { c.Bubbles.MinSize, c.Bubbles.MaxSize = 80, 40 }, ErrInvalidSizeRange},
		{"zero min size", func(c *BubblePopConfig) { c.Bubbles.MinSize = 0 }, ErrInvalidSizeRange},
		{"empty speed range", func(c *BubblePopConfig) { c.Bubbles.MinSpeed = 100 }, ErrInvalidConfig},
		{"zero spawn rate", func(c *BubblePopConfig) { c.Spawn.Rate = 0 }, ErrInvalidConfig},
		{"slow factor above one", func(c *BubblePopConfig) { c.Powerup.SlowFactor = 2 }, ErrInvalidConfig},
		{"zero window", func(c *BubblePopConfig) { c.Window.Width = 0 }, ErrInvalidConfig},
		{"history too short", func(c *BubblePopConfig) { c.History.Size = 1 }, ErrInvalidConfig},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBubblePopConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.expected == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tc.expected) {
				t.Errorf("Validate() = %v, expected %v", err, tc.expected)
			}
		})
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("bubbles:\n  min_size: 30\n  max_size: 60\nwindow:\n  fullscreen: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Bubbles.MinSize != 30 || cfg.Bubbles.MaxSize != 60 {
		t.Errorf("size range = [%d, %d), expected [30, 60)", cfg.Bubbles.MinSize, cfg.Bubbles.MaxSize)
	}
	if !cfg.Window.Fullscreen {
		t.Error("Window.Fullscreen = false, expected true")
	}
	// Untouched fields keep their defaults
	if cfg.Bonus.Threshold != 5.0 {
		t.Errorf("Bonus.Threshold = %v, expected 5.0", cfg.Bonus.Threshold)
	}
	if cfg.Bubbles.InitialCount != 50 {
		t.Errorf("Bubbles.InitialCount = %d, expected 50", cfg.Bubbles.InitialCount)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) error = nil, expected error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("bubbles: [unclosed"), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load(bad yaml) error = nil, expected error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != DefaultBubblePopConfig() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", ConfigFile), []byte("spawn:\n  rate: 0.4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Spawn.Rate != 0.4 {
		t.Errorf("Spawn.Rate = %v, expected 0.4 from ./configs", cfg.Spawn.Rate)
	}

	// User directory wins over the local one
	userDir := filepath.Join(home, ".bubblepop", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, ConfigFile), []byte("spawn:\n  rate: 0.8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Spawn.Rate != 0.8 {
		t.Errorf("Spawn.Rate = %v, expected 0.8 from home", cfg.Spawn.Rate)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"", DifficultyNormal, false},
		{"nightmare", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePreset(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
			}
		})
	}
}

func TestApplyPresetKeepsRulesAndValidity(t *testing.T) {
	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		t.Run(string(preset), func(t *testing.T) {
			cfg := DefaultBubblePopConfig()
			ApplyPreset(&cfg, preset)
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			def := DefaultBubblePopConfig()
			if cfg.Bonus != def.Bonus || cfg.Powerup != def.Powerup || cfg.Level != def.Level {
				t.Error("preset changed scoring rules")
			}
		})
	}

	normal := DefaultBubblePopConfig()
	ApplyPreset(&normal, DifficultyNormal)
	if normal != DefaultBubblePopConfig() {
		t.Error("normal preset should not change the config")
	}
}

func TestLoadPreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("bubbles:\n  initial_count: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPreset(path, "hard")
	if err != nil {
		t.Fatalf("LoadPreset() error = %v", err)
	}
	if cfg.Bubbles.MinSize != 15 || cfg.Bubbles.MaxSize != 60 {
		t.Errorf("size range = %d..%d, expected the hard preset 15..60", cfg.Bubbles.MinSize, cfg.Bubbles.MaxSize)
	}

	if _, err := LoadPreset(path, "nightmare"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadPreset(unknown difficulty) error = %v, expected ErrInvalidConfig", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("bubbles:\n  min_size: 90\n  max_size: 30\n"), 0o644)
	if _, err := LoadPreset(bad, "normal"); !errors.Is(err, ErrInvalidSizeRange) {
		t.Errorf("LoadPreset(inverted sizes) error = %v, expected ErrInvalidSizeRange", err)
	}
}
