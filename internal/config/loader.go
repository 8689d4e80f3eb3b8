package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "glyphrush.yaml"

// Load loads the Glyph Rush configuration.
// Search order: customPath -> ~/.glyphrush/configs/glyphrush.yaml ->
// ./configs/glyphrush.yaml -> embedded default -> hardcoded default.
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it sets. An explicit customPath that cannot be read or parsed is an
// error; the implicit locations are skipped silently.
func Load(customPath string) (GlyphRushConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GlyphRushConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return GlyphRushConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultGlyphRushYAML)
	if err != nil {
		return DefaultGlyphRushConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the hardcoded defaults and validates the result.
func parse(data []byte) (GlyphRushConfig, error) {
	cfg := DefaultGlyphRushConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GlyphRushConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return GlyphRushConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".glyphrush", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// The fixed preset collapses the timescale options to the default so the
// player cannot change pacing mid-run.
func ApplyPreset(cfg *GlyphRushConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Timescale.Options = []float64{cfg.Timescale.Default}
		return
	}
	cfg.Timescale.Default = TimescaleForPreset(preset)
}
