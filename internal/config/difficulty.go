package config

import (
	"math"
	"sort"
	"time"
)

// GridDimensions maps a score to board dimensions.
// Below the square ceiling the board is the smallest square with more cells
// than the score. From the ceiling on, rows stay at MaxRows and columns grow
// by one every MaxRows points up to MaxCols.
func GridDimensions(score int, g GridConfig) (rows, cols int) {
	score = max(score, 0)
	if score < g.SquareScoreCeiling {
		side := int(math.Ceil(math.Sqrt(float64(score + 1))))
		return min(side, g.MaxRows), min(side, g.MaxCols)
	}
	return g.MaxRows, min(g.MaxCols, score/g.MaxRows+1)
}

// RoundDuration interpolates from initial toward minimum as the unlocked
// fraction grows, never going below minimum, then applies the timescale.
func RoundDuration(unlockedFraction float64, minimum, initial time.Duration, timescale float64) time.Duration {
	f := clampF(unlockedFraction, 0.0, 1.0)
	base := float64(initial) - f*float64(initial-minimum)
	base = math.Max(float64(minimum), base)
	return time.Duration(base * timescale)
}

// AnimationMultiplier interpolates linearly from start at an empty board to
// end at a full board.
func AnimationMultiplier(rows, cols, maxRows, maxCols int, start, end float64) float64 {
	total := maxRows * maxCols
	if total <= 0 {
		return end
	}
	ratio := clampF(float64(rows*cols)/float64(total), 0.0, 1.0)
	return start + ratio*(end-start)
}

// Scale multiplies a duration by a timescale.
func Scale(d time.Duration, timescale float64) time.Duration {
	return time.Duration(float64(d) * timescale)
}

// DifficultyManager computes per-round parameters from a configuration.
type DifficultyManager struct {
	cfg GlyphRushConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg GlyphRushConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// Config returns the configuration the manager was built from.
func (d *DifficultyManager) Config() GlyphRushConfig {
	return d.cfg
}

// GridDimensions returns the board size for a score.
func (d *DifficultyManager) GridDimensions(score int) (rows, cols int) {
	return GridDimensions(score, d.cfg.Grid)
}

// RoundDuration returns the timescaled round length for an unlocked fraction.
func (d *DifficultyManager) RoundDuration(unlockedFraction, timescale float64) time.Duration {
	return RoundDuration(unlockedFraction, d.cfg.Timing.MinRound, d.cfg.Timing.InitialRound, timescale)
}

// AnimationMultiplier returns the cosmetic speed multiplier for a board size.
func (d *DifficultyManager) AnimationMultiplier(rows, cols int) float64 {
	a := d.cfg.Animation
	return AnimationMultiplier(rows, cols, d.cfg.Grid.MaxRows, d.cfg.Grid.MaxCols, a.StartMultiplier, a.EndMultiplier)
}

// Scaled returns d multiplied by the timescale.
func (d *DifficultyManager) Scaled(dur time.Duration, timescale float64) time.Duration {
	return Scale(dur, timescale)
}

// StepTimescale returns the option next to current in the given direction
// (+1 slower, -1 faster). Out-of-list values snap to the nearest option first.
func (d *DifficultyManager) StepTimescale(current float64, dir int) float64 {
	opts := append([]float64(nil), d.cfg.Timescale.Options...)
	if len(opts) == 0 {
		return current
	}
	sort.Float64s(opts)

	idx := 0
	best := math.Inf(1)
	for i, o := range opts {
		if diff := math.Abs(o - current); diff < best {
			best, idx = diff, i
		}
	}

	switch {
	case dir > 0:
		idx = min(idx+1, len(opts)-1)
	case dir < 0:
		idx = max(idx-1, 0)
	}
	return opts[idx]
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
