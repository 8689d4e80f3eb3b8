// Package config provides YAML-based game configuration loading and
// difficulty management for Glyph Rush.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/glyph-rush/internal/glyph"
)

// GlyphRushConfig contains all tunables for the game.
type GlyphRushConfig struct {
	Glyphs    GlyphsConfig    `yaml:"glyphs"`
	Grid      GridConfig      `yaml:"grid"`
	Timing    TimingConfig    `yaml:"timing"`
	Timescale TimescaleConfig `yaml:"timescale"`
	Animation AnimationConfig `yaml:"animation"`
}

// GlyphsConfig selects the glyph universe and how much of it starts unlocked.
type GlyphsConfig struct {
	Set                 string  `yaml:"set"`
	TargetCount         int     `yaml:"target_count"`
	StartUnlockFraction float64 `yaml:"start_unlock_fraction"`
}

// GridConfig bounds the board size.
type GridConfig struct {
	SquareScoreCeiling int `yaml:"square_score_ceiling"`
	MaxRows            int `yaml:"max_rows"`
	MaxCols            int `yaml:"max_cols"`
}

// TimingConfig holds the unscaled durations. Every value is multiplied by the
// active timescale before use.
type TimingConfig struct {
	InitialRound      time.Duration `yaml:"initial_round"`
	MinRound          time.Duration `yaml:"min_round"`
	EndRound          time.Duration `yaml:"end_round"`
	ResetDelay        time.Duration `yaml:"reset_delay"`
	EarlyEndThreshold time.Duration `yaml:"early_end_threshold"`
	StartDebounce     time.Duration `yaml:"start_debounce"`
}

// TimescaleConfig lists the selectable timescales.
type TimescaleConfig struct {
	Default float64   `yaml:"default"`
	Options []float64 `yaml:"options"`
}

// AnimationConfig defines the cosmetic speed multiplier range.
type AnimationConfig struct {
	StartMultiplier float64 `yaml:"start_multiplier"` // Small grids
	EndMultiplier   float64 `yaml:"end_multiplier"`   // Full grid
}

// Validate reports the first invalid setting.
func (c GlyphRushConfig) Validate() error {
	if _, ok := glyph.Lookup(c.Glyphs.Set); !ok {
		return fmt.Errorf("config: unknown glyph set %q", c.Glyphs.Set)
	}
	if c.Glyphs.TargetCount < 1 {
		return errors.New("config: glyphs.target_count must be at least 1")
	}
	if c.Glyphs.StartUnlockFraction <= 0 || c.Glyphs.StartUnlockFraction > 1 {
		return errors.New("config: glyphs.start_unlock_fraction must be in (0, 1]")
	}

	if c.Grid.MaxRows < 1 || c.Grid.MaxCols < 1 {
		return errors.New("config: grid.max_rows and grid.max_cols must be positive")
	}
	if c.Grid.SquareScoreCeiling < 0 {
		return errors.New("config: grid.square_score_ceiling must not be negative")
	}

	t := c.Timing
	if t.InitialRound <= 0 || t.MinRound <= 0 || t.EndRound <= 0 {
		return errors.New("config: round durations must be positive")
	}
	if t.MinRound > t.InitialRound {
		return fmt.Errorf("config: timing.min_round (%v) exceeds timing.initial_round (%v)", t.MinRound, t.InitialRound)
	}
	if t.ResetDelay < 0 || t.EarlyEndThreshold < 0 || t.StartDebounce < 0 {
		return errors.New("config: timing delays must not be negative")
	}
	// The debounce only filters repeated external starts. It must stay
	// below the shortest round and wrap-up at the same timescale.
	if t.StartDebounce >= t.MinRound || t.StartDebounce >= t.EndRound {
		return errors.New("config: timing.start_debounce must be shorter than min_round and end_round")
	}

	if len(c.Timescale.Options) == 0 {
		return errors.New("config: timescale.options must not be empty")
	}
	for _, o := range c.Timescale.Options {
		if o <= 0 {
			return fmt.Errorf("config: timescale option %v must be positive", o)
		}
	}
	if c.Timescale.Default <= 0 {
		return errors.New("config: timescale.default must be positive")
	}

	if c.Animation.StartMultiplier <= 0 || c.Animation.EndMultiplier <= 0 {
		return errors.New("config: animation multipliers must be positive")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name. Empty means normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// TimescaleForPreset returns the starting timescale for a difficulty preset.
// Larger timescales mean longer rounds.
func TimescaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.75
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset locks the timescale.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
