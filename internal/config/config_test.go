package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultGlyphRushConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	def := DefaultGlyphRushConfig()

	if cfg.Glyphs != def.Glyphs {
		t.Errorf("glyphs = %+v, expected %+v", cfg.Glyphs, def.Glyphs)
	}
	if cfg.Grid != def.Grid {
		t.Errorf("grid = %+v, expected %+v", cfg.Grid, def.Grid)
	}
	if cfg.Timing != def.Timing {
		t.Errorf("timing = %+v, expected %+v", cfg.Timing, def.Timing)
	}
	if cfg.Animation != def.Animation {
		t.Errorf("animation = %+v, expected %+v", cfg.Animation, def.Animation)
	}
	if len(cfg.Timescale.Options) != len(def.Timescale.Options) {
		t.Errorf("timescale options = %v, expected %v", cfg.Timescale.Options, def.Timescale.Options)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "timing:\n  initial_round: 20s\ngrid:\n  max_cols: 12\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timing.InitialRound != 20*time.Second {
		t.Errorf("InitialRound = %v, expected 20s", cfg.Timing.InitialRound)
	}
	if cfg.Grid.MaxCols != 12 {
		t.Errorf("MaxCols = %d, expected 12", cfg.Grid.MaxCols)
	}
	// Unset keys keep their defaults
	if cfg.Timing.MinRound != 3*time.Second || cfg.Grid.MaxRows != 8 {
		t.Errorf("partial file should keep defaults, got %+v %+v", cfg.Timing, cfg.Grid)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("glyphs:\n  set: cuneiform\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "unknown glyph set") {
		t.Errorf("expected unknown glyph set error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GlyphRushConfig)
	}{
		{"zero targets", func(c *GlyphRushConfig) { c.Glyphs.TargetCount = 0 }},
		{"zero unlock fraction", func(c *GlyphRushConfig) { c.Glyphs.StartUnlockFraction = 0 }},
		{"unlock fraction above one", func(c *GlyphRushConfig) { c.Glyphs.StartUnlockFraction = 1.5 }},
		{"zero rows", func(c *GlyphRushConfig) { c.Grid.MaxRows = 0 }},
		{"min above initial", func(c *GlyphRushConfig) { c.Timing.MinRound = 20 * time.Second }},
		{"negative debounce", func(c *GlyphRushConfig) { c.Timing.StartDebounce = -time.Second }},
		{"debounce longer than wrap-up", func(c *GlyphRushConfig) { c.Timing.StartDebounce = 2 * time.Second }},
		{"no timescale options", func(c *GlyphRushConfig) { c.Timescale.Options = nil }},
		{"negative timescale option", func(c *GlyphRushConfig) { c.Timescale.Options = []float64{1, -1} }},
		{"zero animation multiplier", func(c *GlyphRushConfig) { c.Animation.EndMultiplier = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGlyphRushConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficultyPreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficultyPreset(%q) error = %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("ParseDifficultyPreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultGlyphRushConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Timescale.Default != 1.5 {
		t.Errorf("easy default timescale = %v, expected 1.5", cfg.Timescale.Default)
	}

	cfg = DefaultGlyphRushConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Timescale.Default != 0.75 {
		t.Errorf("hard default timescale = %v, expected 0.75", cfg.Timescale.Default)
	}

	cfg = DefaultGlyphRushConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if len(cfg.Timescale.Options) != 1 || cfg.Timescale.Options[0] != cfg.Timescale.Default {
		t.Errorf("fixed preset should lock options, got %v", cfg.Timescale.Options)
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyNormal) {
		t.Error("IsFixedPreset mismatch")
	}
}
