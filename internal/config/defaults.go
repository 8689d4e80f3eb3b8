package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/glyph-rush/internal/glyph"
)

//go:embed defaults/glyphrush.yaml
var defaultGlyphRushYAML []byte

// DefaultGlyphRushConfig returns the default Glyph Rush configuration.
func DefaultGlyphRushConfig() GlyphRushConfig {
	return GlyphRushConfig{
		Glyphs: GlyphsConfig{
			Set:                 glyph.LinearAID,
			TargetCount:         4,
			StartUnlockFraction: 0.01,
		},
		Grid: GridConfig{
			SquareScoreCeiling: 64,
			MaxRows:            8,
			MaxCols:            15,
		},
		Timing: TimingConfig{
			InitialRound:      10 * time.Second,
			MinRound:          3 * time.Second,
			EndRound:          1 * time.Second,
			ResetDelay:        50 * time.Millisecond,
			EarlyEndThreshold: 500 * time.Millisecond,
			StartDebounce:     250 * time.Millisecond,
		},
		Timescale: TimescaleConfig{
			Default: 1.0,
			Options: []float64{0.5, 0.75, 1.0, 1.5, 2.0},
		},
		Animation: AnimationConfig{
			StartMultiplier: 2.75,
			EndMultiplier:   1.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGlyphRushYAML
}
