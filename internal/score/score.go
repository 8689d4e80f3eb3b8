// Package score applies score deltas and keeps the glyph pool in step with them.
package score

import "github.com/vovakirdan/glyph-rush/internal/pool"

// Result describes the outcome of applying a delta.
type Result struct {
	Score   int  // Score after clamping at zero
	Changed bool // Whether the score actually moved
	Moved   int  // Glyphs moved between pool partitions
}

// Apply adds delta to current, clamped at zero. When the score changes the pool
// is adjusted by the same delta in the same step, with floor as the minimum
// number of unlocked glyphs to keep.
func Apply(current, delta int, p *pool.Pool, floor int) Result {
	next := max(0, current+delta)
	if next == current {
		return Result{Score: current}
	}

	res := Result{Score: next, Changed: true}
	if p != nil {
		res.Moved = p.Adjust(delta, floor)
	}
	return res
}

// Direction returns +1, -1 or 0 for the sign of delta.
func Direction(delta int) int {
	switch {
	case delta > 0:
		return 1
	case delta < 0:
		return -1
	default:
		return 0
	}
}
